// Package rdsinventory discovers RDS database instances.
package rdsinventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntityDBInstance is the entity type produced by this package.
const EntityDBInstance = "rds-instance"

// ClientAPI defines the RDS client methods used by this service.
type ClientAPI interface {
	DescribeDBInstances(ctx context.Context, params *rds.DescribeDBInstancesInput, optFns ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error)
}

// Service discovers RDS entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new RDS inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: rds.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new RDS inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
