package cloudtrailinventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityTrail}
}

func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	if entityType != EntityTrail {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	out, err := s.client.DescribeTrails(ctx, &cloudtrail.DescribeTrailsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe trails: %w", err)
	}

	informers := make([]*informer.Informer, 0, len(out.TrailList))
	for _, trail := range out.TrailList {
		arn := aws.ToString(trail.TrailARN)
		inf, err := informer.New(EntityTrail, trail, s.meta, s.expandTrail(arn))
		if err != nil {
			return nil, err
		}
		informers = append(informers, inf)
	}

	return informers, nil
}

func (s *service) expandTrail(arn string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		status, err := s.client.GetTrailStatus(ctx, &cloudtrail.GetTrailStatusInput{Name: aws.String(arn)})
		if err != nil {
			return fmt.Errorf("failed to get trail status for %s: %w", arn, err)
		}
		return inf.Merge("Status", status)
	}
}
