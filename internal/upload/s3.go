// Package upload stores images: compress to the policy limits, put to S3,
// hand back a public URL. Callers treat a nil error as "uploaded"; failures
// are theirs to drop or surface.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	appconfig "SURUWE_BACK-END/internal/config"
)

// Uploader is the blob-store collaborator.
type Uploader interface {
	Upload(ctx context.Context, data []byte, folder string) (string, error)
}

// S3Uploader implements Uploader against an S3 bucket.
type S3Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
	policy     appconfig.UploadConfig
	logger     *zap.Logger
}

// NewS3Uploader initializes the S3 client from the default credential chain.
func NewS3Uploader(ctx context.Context, cfg appconfig.StorageConfig, policy appconfig.UploadConfig, logger *zap.Logger) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Uploader{
		client:     s3.NewFromConfig(awsCfg),
		bucket:     cfg.Bucket,
		publicBase: publicBase,
		policy:     policy,
		logger:     logger,
	}, nil
}

// Upload compresses the image and puts it under folder, returning the public
// URL. Keys are folder/<unix-ms>-<rand>.jpg.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, folder string) (string, error) {
	compressed, err := Compress(data, u.policy.MaxEdge, u.policy.MaxBytes)
	if err != nil {
		u.logger.Warn("image compression failed", zap.String("folder", folder), zap.Error(err))
		return "", err
	}

	key := fmt.Sprintf("%s/%d-%s.jpg", folder, time.Now().UnixMilli(), randomToken(6))
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(compressed),
		ContentType:  aws.String("image/jpeg"),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		u.logger.Warn("s3 upload failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return u.publicBase + "/" + key, nil
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(b)
}
