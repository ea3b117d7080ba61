package s3inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityBucket}
}

func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	if entityType != EntityBucket {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	out, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	informers := make([]*informer.Informer, 0, len(out.Buckets))
	for _, bucket := range out.Buckets {
		name := aws.ToString(bucket.Name)
		inf, err := informer.New(EntityBucket, bucket, s.meta, s.expandBucket(name))
		if err != nil {
			return nil, err
		}
		informers = append(informers, inf)
	}

	return informers, nil
}

// expandBucket attaches the per-bucket detail that ListBuckets omits.
// Missing optional configuration (no encryption config, no tags) is not an
// error; the field is simply absent from the report.
func (s *service) expandBucket(name string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		location, err := s.client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{Bucket: aws.String(name)})
		if err != nil {
			return fmt.Errorf("failed to get bucket location for %s: %w", name, err)
		}
		region := string(location.LocationConstraint)
		if region == "" {
			region = "us-east-1" // LocationConstraint is empty for the default region
		}
		inf.Set("Location", region)

		versioning, err := s.client.GetBucketVersioning(ctx, &s3.GetBucketVersioningInput{Bucket: aws.String(name)})
		if err != nil {
			return fmt.Errorf("failed to get bucket versioning for %s: %w", name, err)
		}
		inf.Set("Versioning", string(versioning.Status))

		encryption, err := s.client.GetBucketEncryption(ctx, &s3.GetBucketEncryptionInput{Bucket: aws.String(name)})
		switch {
		case err == nil && encryption.ServerSideEncryptionConfiguration != nil:
			if err := inf.Merge("Encryption", encryption.ServerSideEncryptionConfiguration); err != nil {
				return err
			}
		case err != nil && !isNotFound(err):
			return fmt.Errorf("failed to get bucket encryption for %s: %w", name, err)
		}

		tagging, err := s.client.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{Bucket: aws.String(name)})
		switch {
		case err == nil:
			tags := make(map[string]any, len(tagging.TagSet))
			for _, tag := range tagging.TagSet {
				tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
			}
			inf.Set("Tags", tags)
		case !isNotFound(err):
			return fmt.Errorf("failed to get bucket tagging for %s: %w", name, err)
		}

		return nil
	}
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchTagSet", "ServerSideEncryptionConfigurationNotFoundError", "NoSuchBucket":
			return true
		}
	}
	return false
}
