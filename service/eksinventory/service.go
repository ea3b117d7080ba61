package eksinventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityCluster}
}

// Discover lists cluster names only; DescribeCluster detail arrives with
// expansion.
func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	if entityType != EntityCluster {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	var informers []*informer.Informer

	paginator := eks.NewListClustersPaginator(s.client, &eks.ListClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list clusters: %w", err)
		}
		for _, name := range page.Clusters {
			inf, err := informer.New(EntityCluster, struct{ Name string }{Name: name}, s.meta, s.expandCluster(name))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandCluster(name string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		out, err := s.client.DescribeCluster(ctx, &eks.DescribeClusterInput{Name: aws.String(name)})
		if err != nil {
			return fmt.Errorf("failed to describe cluster %s: %w", name, err)
		}
		if out.Cluster == nil {
			return nil
		}
		return inf.MergeInto(out.Cluster)
	}
}
