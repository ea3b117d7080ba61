package elbinventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityLoadBalancer}
}

func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	if entityType != EntityLoadBalancer {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	var informers []*informer.Informer

	paginator := elbv2.NewDescribeLoadBalancersPaginator(s.client, &elbv2.DescribeLoadBalancersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe load balancers: %w", err)
		}
		for _, lb := range page.LoadBalancers {
			arn := aws.ToString(lb.LoadBalancerArn)
			inf, err := informer.New(EntityLoadBalancer, lb, s.meta, s.expandLoadBalancer(arn))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandLoadBalancer(arn string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		listeners, err := s.client.DescribeListeners(ctx, &elbv2.DescribeListenersInput{
			LoadBalancerArn: aws.String(arn),
		})
		if err != nil {
			return fmt.Errorf("failed to describe listeners for %s: %w", arn, err)
		}
		listenerDocs := make([]any, 0, len(listeners.Listeners))
		for _, listener := range listeners.Listeners {
			doc, err := informer.ToDocument(listener)
			if err != nil {
				return err
			}
			listenerDocs = append(listenerDocs, doc)
		}
		inf.Set("Listeners", listenerDocs)

		tagsOut, err := s.client.DescribeTags(ctx, &elbv2.DescribeTagsInput{ResourceArns: []string{arn}})
		if err != nil {
			return fmt.Errorf("failed to describe tags for %s: %w", arn, err)
		}
		tags := make(map[string]any)
		for _, desc := range tagsOut.TagDescriptions {
			for _, tag := range desc.Tags {
				tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
			}
		}
		inf.Set("Tags", tags)
		return nil
	}
}
