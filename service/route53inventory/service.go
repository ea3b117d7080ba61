package route53inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityHostedZone}
}

func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	if entityType != EntityHostedZone {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	var informers []*informer.Informer

	paginator := route53.NewListHostedZonesPaginator(s.client, &route53.ListHostedZonesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list hosted zones: %w", err)
		}
		for _, zone := range page.HostedZones {
			// Zone IDs come back as /hostedzone/Z123; the tagging API wants
			// the bare ID.
			zoneID := strings.TrimPrefix(aws.ToString(zone.Id), "/hostedzone/")
			inf, err := informer.New(EntityHostedZone, zone, s.meta, s.expandZone(zoneID))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandZone(zoneID string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		out, err := s.client.ListTagsForResource(ctx, &route53.ListTagsForResourceInput{
			ResourceType: types.TagResourceTypeHostedzone,
			ResourceId:   aws.String(zoneID),
		})
		if err != nil {
			return fmt.Errorf("failed to list tags for zone %s: %w", zoneID, err)
		}
		if out.ResourceTagSet == nil {
			return nil
		}
		tags := make(map[string]any, len(out.ResourceTagSet.Tags))
		for _, tag := range out.ResourceTagSet.Tags {
			tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}
		inf.Set("Tags", tags)
		return nil
	}
}
