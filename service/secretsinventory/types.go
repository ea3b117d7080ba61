// Package secretsinventory discovers Secrets Manager secrets.
package secretsinventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntitySecret is the entity type produced by this package.
const EntitySecret = "secret"

// ClientAPI defines the Secrets Manager client methods used by this service.
type ClientAPI interface {
	ListSecrets(ctx context.Context, params *secretsmanager.ListSecretsInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.ListSecretsOutput, error)
}

// Service discovers secret entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new secrets inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: secretsmanager.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new secrets inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
