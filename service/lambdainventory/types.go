// Package lambdainventory discovers Lambda functions.
package lambdainventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntityFunction is the entity type produced by this package.
const EntityFunction = "lambda-function"

// ClientAPI defines the Lambda client methods used by this service.
type ClientAPI interface {
	ListFunctions(ctx context.Context, params *lambda.ListFunctionsInput, optFns ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error)
	ListTags(ctx context.Context, params *lambda.ListTagsInput, optFns ...func(*lambda.Options)) (*lambda.ListTagsOutput, error)
}

// Service discovers Lambda entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new Lambda inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: lambda.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new Lambda inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
