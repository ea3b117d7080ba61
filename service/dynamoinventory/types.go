// Package dynamoinventory discovers DynamoDB tables.
package dynamoinventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntityTable is the entity type produced by this package.
const EntityTable = "dynamodb-table"

// ClientAPI defines the DynamoDB client methods used by this service.
type ClientAPI interface {
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Service discovers DynamoDB entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new DynamoDB inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: dynamodb.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new DynamoDB inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
