package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/config"
)

// UploadService stores listing media, blog images, banner creatives and
// campaign photos in S3-compatible object storage and hands back the
// public URL that gets persisted on the owning record.
type UploadService interface {
	UploadPropertyImage(ctx context.Context, propertyID, filename string, data io.Reader) (string, error)
	UploadBlogImage(ctx context.Context, blogID, filename string, data io.Reader) (string, error)
	UploadBannerImage(ctx context.Context, bannerID, filename string, data io.Reader) (string, error)
	UploadGreenPhoto(ctx context.Context, filename string, data io.Reader) (string, error)
}

type uploadService struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
	now      func() time.Time
}

func NewUploadService(ctx context.Context, cfg *config.Config) (UploadService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var client *s3.Client
	if cfg.S3Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &uploadService{
		client:   client,
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		endpoint: cfg.S3Endpoint,
		now:      time.Now,
	}, nil
}

func (s *uploadService) UploadPropertyImage(ctx context.Context, propertyID, filename string, data io.Reader) (string, error) {
	key := fmt.Sprintf("properties/%s/%d_%s", propertyID, s.now().UnixMilli(), sanitizeFilename(filename))
	return s.put(ctx, key, filename, data)
}

func (s *uploadService) UploadBlogImage(ctx context.Context, blogID, filename string, data io.Reader) (string, error) {
	key := fmt.Sprintf("blogPosts/%s/%d_%s", blogID, s.now().UnixMilli(), sanitizeFilename(filename))
	return s.put(ctx, key, filename, data)
}

func (s *uploadService) UploadBannerImage(ctx context.Context, bannerID, filename string, data io.Reader) (string, error) {
	// Banner keys carry no timestamp so a re-upload replaces the creative.
	key := fmt.Sprintf("banners/%s/%s", bannerID, sanitizeFilename(filename))
	return s.put(ctx, key, filename, data)
}

func (s *uploadService) UploadGreenPhoto(ctx context.Context, filename string, data io.Reader) (string, error) {
	key := fmt.Sprintf("greenForms/%d_%s", s.now().UnixMilli(), sanitizeFilename(filename))
	return s.put(ctx, key, filename, data)
}

func (s *uploadService) put(ctx context.Context, key, filename string, data io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentTypeFor(filename)),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.publicURL(key), nil
}

func (s *uploadService) publicURL(key string) string {
	if s.endpoint != "" && strings.Contains(s.endpoint, "digitaloceanspaces.com") {
		// DO Spaces: https://{bucket}.{region}.digitaloceanspaces.com/{key}
		host := strings.TrimPrefix(s.endpoint, "https://")
		return fmt.Sprintf("https://%s.%s/%s", s.bucket, host, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// sanitizeFilename keeps only characters safe to carry in an object key.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
