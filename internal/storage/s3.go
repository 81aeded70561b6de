package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/sharebnb-gmm/pool-party-api/internal/config"
)

// Uploader pushes a blob to object storage and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
}

type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	client := s3.New(s3.Options{
		Region: cfg.AWSRegion,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, ""),
		),
	})

	return &S3Uploader{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.AWSRegion,
	}
}

func (u *S3Uploader) Upload(
	ctx context.Context,
	filename string,
	contentType string,
	body io.Reader,
) (string, error) {

	// Random key prefix so two "pool.jpg" uploads never clobber each other.
	key := fmt.Sprintf("%s%s", uuid.New().String(), path.Ext(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
