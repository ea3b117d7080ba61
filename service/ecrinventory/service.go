package ecrinventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityRepository}
}

func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	if entityType != EntityRepository {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	var informers []*informer.Informer

	paginator := ecr.NewDescribeRepositoriesPaginator(s.client, &ecr.DescribeRepositoriesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe repositories: %w", err)
		}
		for _, repo := range page.Repositories {
			arn := aws.ToString(repo.RepositoryArn)
			inf, err := informer.New(EntityRepository, repo, s.meta, s.expandRepository(arn))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandRepository(arn string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		out, err := s.client.ListTagsForResource(ctx, &ecr.ListTagsForResourceInput{ResourceArn: aws.String(arn)})
		if err != nil {
			return fmt.Errorf("failed to list tags for %s: %w", arn, err)
		}
		tags := make(map[string]any, len(out.Tags))
		for _, tag := range out.Tags {
			tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}
		inf.Set("Tags", tags)
		return nil
	}
}
