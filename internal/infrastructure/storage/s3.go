package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mrsetia1/flowmint/internal/application/usecase"
	appconfig "github.com/mrsetia1/flowmint/pkg/config"
)

var _ usecase.ObjectStore = (*S3Store)(nil)

// S3Store writes uploads to an S3-compatible bucket (AWS or MinIO). Objects
// are publicly addressed under publicBase, e.g.
// https://cdn.example.com/<key>.
type S3Store struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewS3Store builds the S3 client with static credentials and an optional
// custom endpoint (MinIO or another S3-compatible store).
func NewS3Store(ctx context.Context, cfg appconfig.StorageConfig) (*S3Store, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("storage: S3_BUCKET is required for the s3 driver")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			// MinIO and friends need path-style addressing.
			o.UsePathStyle = true
		}
	})

	publicBase := strings.TrimRight(cfg.S3PublicBase, "/")
	if publicBase == "" {
		publicBase = strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}
	return &S3Store{client: client, bucket: cfg.S3Bucket, publicBase: publicBase}, nil
}

// Save puts the object and returns its public URL.
func (s *S3Store) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put object %s: %w", key, err)
	}
	return s.publicBase + "/" + key, nil
}
