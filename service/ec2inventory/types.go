// Package ec2inventory discovers EC2 networking and compute resources.
package ec2inventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// Entity types produced by this package.
const (
	EntityVpc           = "vpc"
	EntitySubnet        = "subnet"
	EntitySecurityGroup = "security-group"
	EntityInstance      = "ec2-instance"
	EntityVolume        = "ebs-volume"
)

// ClientAPI defines the EC2 client methods used by this service.
type ClientAPI interface {
	DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	DescribeVpcAttribute(ctx context.Context, params *ec2.DescribeVpcAttributeInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcAttributeOutput, error)
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	DescribeVolumes(ctx context.Context, params *ec2.DescribeVolumesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVolumesOutput, error)
}

// Service discovers EC2 entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new EC2 inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: ec2.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new EC2 inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
