// Package ecsinventory discovers ECS clusters.
package ecsinventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntityCluster is the entity type produced by this package.
const EntityCluster = "ecs-cluster"

// ClientAPI defines the ECS client methods used by this service.
type ClientAPI interface {
	ListClusters(ctx context.Context, params *ecs.ListClustersInput, optFns ...func(*ecs.Options)) (*ecs.ListClustersOutput, error)
	DescribeClusters(ctx context.Context, params *ecs.DescribeClustersInput, optFns ...func(*ecs.Options)) (*ecs.DescribeClustersOutput, error)
	ListServices(ctx context.Context, params *ecs.ListServicesInput, optFns ...func(*ecs.Options)) (*ecs.ListServicesOutput, error)
}

// Service discovers ECS entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new ECS inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: ecs.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new ECS inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
