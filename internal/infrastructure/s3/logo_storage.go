package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// LogoStorage implements application.LogoStorage on top of an S3 bucket.
// The returned URL is durable and network-resolvable, independent of the
// device the logo came from.
type LogoStorage struct {
	client *awss3.Client
	bucket string
	region string
}

// NewLogoStorage creates a logo store bound to one bucket and region.
func NewLogoStorage(cfg aws.Config, bucket, region string) *LogoStorage {
	return &LogoStorage{
		client: awss3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

// Upload writes the blob under the given key and returns its public URL.
func (s *LogoStorage) Upload(ctx context.Context, key string, blob []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(blob),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
