// Package messaginginventory discovers SNS topics and SQS queues.
package messaginginventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// Entity types produced by this package.
const (
	EntityTopic = "sns-topic"
	EntityQueue = "sqs-queue"
)

// SNSClientAPI defines the SNS client methods used by this service.
type SNSClientAPI interface {
	ListTopics(ctx context.Context, params *sns.ListTopicsInput, optFns ...func(*sns.Options)) (*sns.ListTopicsOutput, error)
	GetTopicAttributes(ctx context.Context, params *sns.GetTopicAttributesInput, optFns ...func(*sns.Options)) (*sns.GetTopicAttributesOutput, error)
}

// SQSClientAPI defines the SQS client methods used by this service.
type SQSClientAPI interface {
	ListQueues(ctx context.Context, params *sqs.ListQueuesInput, optFns ...func(*sqs.Options)) (*sqs.ListQueuesOutput, error)
	GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error)
}

// Service discovers messaging entities as informers.
type Service interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

type service struct {
	snsClient SNSClientAPI
	sqsClient SQSClientAPI
	meta      informer.Metadata
}

// NewService creates a new messaging inventory service.
func NewService(cfg aws.Config, meta informer.Metadata) Service {
	return &service{
		snsClient: sns.NewFromConfig(cfg),
		sqsClient: sqs.NewFromConfig(cfg),
		meta:      meta,
	}
}

// NewServiceWithClients creates a new messaging inventory service with provided clients (for testing).
func NewServiceWithClients(snsClient SNSClientAPI, sqsClient SQSClientAPI, meta informer.Metadata) Service {
	return &service{snsClient: snsClient, sqsClient: sqsClient, meta: meta}
}
