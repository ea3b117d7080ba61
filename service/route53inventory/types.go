// Package route53inventory discovers Route 53 hosted zones.
package route53inventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntityHostedZone is the entity type produced by this package.
const EntityHostedZone = "hosted-zone"

// ClientAPI defines the Route 53 client methods used by this service.
type ClientAPI interface {
	ListHostedZones(ctx context.Context, params *route53.ListHostedZonesInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error)
	ListTagsForResource(ctx context.Context, params *route53.ListTagsForResourceInput, optFns ...func(*route53.Options)) (*route53.ListTagsForResourceOutput, error)
}

// Service discovers Route 53 entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new Route 53 inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: route53.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new Route 53 inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
