// Package eksinventory discovers EKS clusters.
package eksinventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntityCluster is the entity type produced by this package.
const EntityCluster = "eks-cluster"

// ClientAPI defines the EKS client methods used by this service.
type ClientAPI interface {
	ListClusters(ctx context.Context, params *eks.ListClustersInput, optFns ...func(*eks.Options)) (*eks.ListClustersOutput, error)
	DescribeCluster(ctx context.Context, params *eks.DescribeClusterInput, optFns ...func(*eks.Options)) (*eks.DescribeClusterOutput, error)
}

// Service discovers EKS entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new EKS inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: eks.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new EKS inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
