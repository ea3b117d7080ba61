package kmsinventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityKey}
}

// Discover lists key IDs only; DescribeKey metadata arrives with expansion.
func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	if entityType != EntityKey {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	var informers []*informer.Informer

	paginator := kms.NewListKeysPaginator(s.client, &kms.ListKeysInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list keys: %w", err)
		}
		for _, key := range page.Keys {
			keyID := aws.ToString(key.KeyId)
			inf, err := informer.New(EntityKey, key, s.meta, s.expandKey(keyID))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandKey(keyID string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		out, err := s.client.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: aws.String(keyID)})
		if err != nil {
			return fmt.Errorf("failed to describe key %s: %w", keyID, err)
		}
		if out.KeyMetadata == nil {
			return nil
		}
		return inf.MergeInto(out.KeyMetadata)
	}
}
