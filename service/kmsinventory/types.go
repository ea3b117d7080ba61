// Package kmsinventory discovers KMS keys.
package kmsinventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntityKey is the entity type produced by this package.
const EntityKey = "kms-key"

// ClientAPI defines the KMS client methods used by this service.
type ClientAPI interface {
	ListKeys(ctx context.Context, params *kms.ListKeysInput, optFns ...func(*kms.Options)) (*kms.ListKeysOutput, error)
	DescribeKey(ctx context.Context, params *kms.DescribeKeyInput, optFns ...func(*kms.Options)) (*kms.DescribeKeyOutput, error)
}

// Service discovers KMS entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new KMS inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: kms.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new KMS inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
