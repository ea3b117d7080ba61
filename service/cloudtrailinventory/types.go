// Package cloudtrailinventory discovers CloudTrail trails.
package cloudtrailinventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// EntityTrail is the entity type produced by this package.
const EntityTrail = "cloudtrail-trail"

// ClientAPI defines the CloudTrail client methods used by this service.
type ClientAPI interface {
	DescribeTrails(ctx context.Context, params *cloudtrail.DescribeTrailsInput, optFns ...func(*cloudtrail.Options)) (*cloudtrail.DescribeTrailsOutput, error)
	GetTrailStatus(ctx context.Context, params *cloudtrail.GetTrailStatusInput, optFns ...func(*cloudtrail.Options)) (*cloudtrail.GetTrailStatusOutput, error)
}

// Service discovers CloudTrail entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	client ClientAPI
	meta   informer.Metadata
}

// NewService creates a new CloudTrail inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{client: cloudtrail.NewFromConfig(cfg), meta: meta}
}

// NewServiceWithClient creates a new CloudTrail inventory service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI, meta informer.Metadata) Service {
	return &service{client: client, meta: meta}
}
