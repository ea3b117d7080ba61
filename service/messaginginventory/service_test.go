package messaginginventory

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/aws-reporter/service/informer"
)

type mockSNSClient struct{}

func (mockSNSClient) ListTopics(ctx context.Context, params *sns.ListTopicsInput, optFns ...func(*sns.Options)) (*sns.ListTopicsOutput, error) {
	return &sns.ListTopicsOutput{
		Topics: []snstypes.Topic{{TopicArn: aws.String("arn:aws:sns:us-east-1:111122223333:alerts")}},
	}, nil
}

func (mockSNSClient) GetTopicAttributes(ctx context.Context, params *sns.GetTopicAttributesInput, optFns ...func(*sns.Options)) (*sns.GetTopicAttributesOutput, error) {
	return &sns.GetTopicAttributesOutput{
		Attributes: map[string]string{"DisplayName": "Alerts", "SubscriptionsConfirmed": "3"},
	}, nil
}

type mockSQSClient struct{}

func (mockSQSClient) ListQueues(ctx context.Context, params *sqs.ListQueuesInput, optFns ...func(*sqs.Options)) (*sqs.ListQueuesOutput, error) {
	return &sqs.ListQueuesOutput{
		QueueUrls: []string{"https://sqs.us-east-1.amazonaws.com/111122223333/jobs"},
	}, nil
}

func (mockSQSClient) GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error) {
	return &sqs.GetQueueAttributesOutput{
		Attributes: map[string]string{"QueueArn": "arn:aws:sqs:us-east-1:111122223333:jobs", "ApproximateNumberOfMessages": "7"},
	}, nil
}

func testMeta() informer.Metadata {
	return informer.Metadata{Profile: "dev", Region: "us-east-1", Account: "111122223333"}
}

func TestDiscoverTopicsAndExpand(t *testing.T) {
	svc := NewServiceWithClients(mockSNSClient{}, mockSQSClient{}, testMeta())

	infs, err := svc.Discover(context.Background(), EntityTopic)
	require.NoError(t, err)
	require.Len(t, infs, 1)

	require.NoError(t, infs[0].Expand(context.Background()))

	display, ok := infs[0].Value("Attributes.DisplayName")
	require.True(t, ok)
	assert.Equal(t, "Alerts", display)
}

func TestDiscoverQueuesAndExpand(t *testing.T) {
	svc := NewServiceWithClients(mockSNSClient{}, mockSQSClient{}, testMeta())

	infs, err := svc.Discover(context.Background(), EntityQueue)
	require.NoError(t, err)
	require.Len(t, infs, 1)

	data := infs[0].Data()
	assert.Equal(t, "https://sqs.us-east-1.amazonaws.com/111122223333/jobs", data["QueueUrl"])

	require.NoError(t, infs[0].Expand(context.Background()))

	arn, ok := infs[0].Value("Attributes.QueueArn")
	require.True(t, ok)
	assert.Equal(t, "arn:aws:sqs:us-east-1:111122223333:jobs", arn)
}

func TestDiscoverUnsupportedEntityType(t *testing.T) {
	svc := NewServiceWithClients(mockSNSClient{}, mockSQSClient{}, testMeta())

	_, err := svc.Discover(context.Background(), "kinesis-stream")
	assert.ErrorContains(t, err, "unsupported entity type")
}
