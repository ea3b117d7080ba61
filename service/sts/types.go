// Package sts resolves the caller identity for a survey profile.
package sts

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// ClientAPI defines the STS client methods used by this service.
type ClientAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Service resolves the AWS account for a loaded configuration.
type Service interface {
	GetAccountID(ctx context.Context) (string, error)
}

type service struct {
	client ClientAPI
}

// NewService creates a new STS service.
func NewService(cfg aws.Config) Service {
	return &service{client: sts.NewFromConfig(cfg)}
}

// NewServiceWithClient creates a new STS service with a provided client (for testing).
func NewServiceWithClient(client ClientAPI) Service {
	return &service{client: client}
}
