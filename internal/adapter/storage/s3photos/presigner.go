// Package s3photos presigns photo uploads into an S3-compatible bucket.
package s3photos

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/heartmarshall/restoration-backend/internal/config"
)

// Presigner issues presigned PUT URLs for photo objects.
type Presigner struct {
	s3     *s3.Client
	client *s3.PresignClient
	bucket string
	ttl    time.Duration
}

// New builds a Presigner from the storage settings. Static credentials are
// used when both keys are set; otherwise the default AWS chain applies.
func New(ctx context.Context, cfg config.StorageConfig) (*Presigner, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3photos: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Presigner{
		s3:     client,
		client: s3.NewPresignClient(client),
		bucket: cfg.Bucket,
		ttl:    cfg.PresignTTL,
	}, nil
}

// PresignPut returns a URL that accepts one PUT of key with the given
// content type, and the moment it stops being valid.
func (p *Presigner) PresignPut(ctx context.Context, key, contentType string) (string, time.Time, error) {
	expiresAt := time.Now().Add(p.ttl)

	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("s3photos: presign put %s: %w", key, err)
	}

	return req.URL, expiresAt, nil
}

// Ping checks that the bucket exists and the credentials can reach it.
func (p *Presigner) Ping(ctx context.Context) error {
	if _, err := p.s3.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(p.bucket)}); err != nil {
		return fmt.Errorf("s3photos: head bucket %s: %w", p.bucket, err)
	}
	return nil
}
