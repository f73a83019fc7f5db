package storage

import (
	"bytes"
	"context"

	"delivery-availability/core/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader puts opaque objects into a bucket.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

type s3Uploader struct {
	client *s3.Client
	bucket string
}

// NewS3Uploader builds an uploader against the configured export bucket
// using static credentials.
func NewS3Uploader(cfg config.AWSConfig) Uploader {
	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	})
	return &s3Uploader{client: client, bucket: cfg.ExportBucket}
}

func (u *s3Uploader) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}
