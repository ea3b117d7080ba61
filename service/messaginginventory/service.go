package messaginginventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityTopic, EntityQueue}
}

func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	switch entityType {
	case EntityTopic:
		return s.discoverTopics(ctx)
	case EntityQueue:
		return s.discoverQueues(ctx)
	default:
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}
}

func (s *service) discoverTopics(ctx context.Context) ([]*informer.Informer, error) {
	var informers []*informer.Informer

	paginator := sns.NewListTopicsPaginator(s.snsClient, &sns.ListTopicsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list topics: %w", err)
		}
		for _, topic := range page.Topics {
			arn := aws.ToString(topic.TopicArn)
			inf, err := informer.New(EntityTopic, topic, s.meta, s.expandTopic(arn))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandTopic(arn string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		out, err := s.snsClient.GetTopicAttributes(ctx, &sns.GetTopicAttributesInput{TopicArn: aws.String(arn)})
		if err != nil {
			return fmt.Errorf("failed to get topic attributes for %s: %w", arn, err)
		}
		attrs := make(map[string]any, len(out.Attributes))
		for k, v := range out.Attributes {
			attrs[k] = v
		}
		inf.Set("Attributes", attrs)
		return nil
	}
}

func (s *service) discoverQueues(ctx context.Context) ([]*informer.Informer, error) {
	var informers []*informer.Informer

	paginator := sqs.NewListQueuesPaginator(s.sqsClient, &sqs.ListQueuesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list queues: %w", err)
		}
		for _, url := range page.QueueUrls {
			inf, err := informer.New(EntityQueue, struct{ QueueUrl string }{QueueUrl: url}, s.meta, s.expandQueue(url))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandQueue(url string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		out, err := s.sqsClient.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
			QueueUrl:       aws.String(url),
			AttributeNames: []sqstypes.QueueAttributeName{sqstypes.QueueAttributeNameAll},
		})
		if err != nil {
			return fmt.Errorf("failed to get queue attributes for %s: %w", url, err)
		}
		attrs := make(map[string]any, len(out.Attributes))
		for k, v := range out.Attributes {
			attrs[k] = v
		}
		inf.Set("Attributes", attrs)
		return nil
	}
}
