package dynamoinventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityTable}
}

// Discover lists table names only; the full table description is fetched by
// the expansion step.
func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	if entityType != EntityTable {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	var informers []*informer.Informer

	paginator := dynamodb.NewListTablesPaginator(s.client, &dynamodb.ListTablesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tables: %w", err)
		}
		for _, name := range page.TableNames {
			inf, err := informer.New(EntityTable, struct{ TableName string }{TableName: name}, s.meta, s.expandTable(name))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandTable(name string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		out, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
		if err != nil {
			return fmt.Errorf("failed to describe table %s: %w", name, err)
		}
		if out.Table == nil {
			return nil
		}
		return inf.MergeInto(out.Table)
	}
}
