// Package ecrinventory discovers ECR repositories.
package ecrinventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntityRepository is the entity type produced by this package.
const EntityRepository = "ecr-repository"

// ClientAPI defines the ECR client methods used by this service.
type ClientAPI interface {
	DescribeRepositories(ctx context.Context, params *ecr.DescribeRepositoriesInput, optFns ...func(*ecr.Options)) (*ecr.DescribeRepositoriesOutput, error)
	ListTagsForResource(ctx context.Context, params *ecr.ListTagsForResourceInput, optFns ...func(*ecr.Options)) (*ecr.ListTagsForResourceOutput, error)
}

// Service discovers ECR entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new ECR inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: ecr.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new ECR inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
