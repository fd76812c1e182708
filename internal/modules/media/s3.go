package media

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/findelmundo/core/internal/config"
)

// S3Storage uploads media to an S3-compatible bucket. Objects are
// expected to be publicly readable; the returned URL is served straight
// to visitors.
type S3Storage struct {
	client       *s3.Client
	bucket       string
	region       string
	endpoint     string
	customDomain string
	pathStyle    bool
}

func NewS3Storage(cfg config.S3Config) *S3Storage {
	client := s3.New(s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		UsePathStyle: cfg.PathStyleAccess,
		BaseEndpoint: optionalEndpoint(cfg.Endpoint),
	})
	return &S3Storage{
		client:       client,
		bucket:       cfg.Bucket,
		region:       cfg.Region,
		endpoint:     strings.TrimSuffix(cfg.Endpoint, "/"),
		customDomain: strings.TrimSuffix(cfg.CustomDomain, "/"),
		pathStyle:    cfg.PathStyleAccess,
	}
}

func (s *S3Storage) Name() string { return "s3" }

func (s *S3Storage) Save(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", fileName, err)
	}
	return s.publicURL(fileName), nil
}

func (s *S3Storage) Remove(ctx context.Context, fileName string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileName),
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", fileName, err)
	}
	return nil
}

func (s *S3Storage) publicURL(fileName string) string {
	escaped := url.PathEscape(fileName)
	switch {
	case s.customDomain != "":
		return fmt.Sprintf("%s/%s", s.customDomain, escaped)
	case s.endpoint != "":
		if s.pathStyle {
			return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, escaped)
		}
		u, err := url.Parse(s.endpoint)
		if err != nil {
			return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, escaped)
		}
		return fmt.Sprintf("%s://%s.%s/%s", u.Scheme, s.bucket, u.Host, escaped)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
	}
}

func optionalEndpoint(endpoint string) *string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}
