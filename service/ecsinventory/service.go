package ecsinventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityCluster}
}

func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	if entityType != EntityCluster {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	var arns []string
	paginator := ecs.NewListClustersPaginator(s.client, &ecs.ListClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list clusters: %w", err)
		}
		arns = append(arns, page.ClusterArns...)
	}
	if len(arns) == 0 {
		return nil, nil
	}

	// DescribeClusters accepts at most 100 ARNs per call.
	var informers []*informer.Informer
	for start := 0; start < len(arns); start += 100 {
		end := min(start+100, len(arns))
		out, err := s.client.DescribeClusters(ctx, &ecs.DescribeClustersInput{Clusters: arns[start:end]})
		if err != nil {
			return nil, fmt.Errorf("failed to describe clusters: %w", err)
		}
		for _, cluster := range out.Clusters {
			arn := aws.ToString(cluster.ClusterArn)
			inf, err := informer.New(EntityCluster, cluster, s.meta, s.expandCluster(arn))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandCluster(arn string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		var serviceArns []string
		paginator := ecs.NewListServicesPaginator(s.client, &ecs.ListServicesInput{Cluster: aws.String(arn)})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return fmt.Errorf("failed to list services for %s: %w", arn, err)
			}
			serviceArns = append(serviceArns, page.ServiceArns...)
		}
		inf.Set("ServiceArns", serviceArns)
		return nil
	}
}
