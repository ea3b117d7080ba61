package lambdainventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityFunction}
}

func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	if entityType != EntityFunction {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	var informers []*informer.Informer

	paginator := lambda.NewListFunctionsPaginator(s.client, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list functions: %w", err)
		}
		for _, fn := range page.Functions {
			arn := aws.ToString(fn.FunctionArn)
			inf, err := informer.New(EntityFunction, fn, s.meta, s.expandFunction(arn))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandFunction(arn string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		tags, err := s.client.ListTags(ctx, &lambda.ListTagsInput{Resource: aws.String(arn)})
		if err != nil {
			return fmt.Errorf("failed to list tags for %s: %w", arn, err)
		}
		doc := make(map[string]any, len(tags.Tags))
		for k, v := range tags.Tags {
			doc[k] = v
		}
		inf.Set("Tags", doc)
		return nil
	}
}
