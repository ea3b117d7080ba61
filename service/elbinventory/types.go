// Package elbinventory discovers elastic load balancers.
package elbinventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntityLoadBalancer is the entity type produced by this package.
const EntityLoadBalancer = "load-balancer"

// ClientAPI defines the ELBv2 client methods used by this service.
type ClientAPI interface {
	DescribeLoadBalancers(ctx context.Context, params *elbv2.DescribeLoadBalancersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeLoadBalancersOutput, error)
	DescribeListeners(ctx context.Context, params *elbv2.DescribeListenersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeListenersOutput, error)
	DescribeTags(ctx context.Context, params *elbv2.DescribeTagsInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeTagsOutput, error)
}

// Service discovers load balancer entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new load balancer inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: elbv2.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new load balancer inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
