// Package uploader pushes generated artifacts to S3-compatible object
// storage so downstream provisioning tools can fetch them.
package uploader

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/edvin/pginfra/internal/model"
)

type S3Uploader struct {
	logger zerolog.Logger
	client *s3.Client
	bucket string
}

// NewS3 creates an uploader for the given bucket. A non-empty endpoint
// switches the client to path-style addressing for self-hosted gateways.
func NewS3(logger zerolog.Logger, endpoint, region, accessKey, secretKey, bucket string) *S3Uploader {
	opts := s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}

	return &S3Uploader{
		logger: logger.With().Str("component", "s3-uploader").Logger(),
		client: s3.New(opts),
		bucket: bucket,
	}
}

// Upload puts both artifacts into the bucket under their derived names.
func (u *S3Uploader) Upload(ctx context.Context, set *model.ArtifactSet) error {
	for _, a := range []model.Artifact{set.Terraform, set.Ansible} {
		u.logger.Info().Str("bucket", u.bucket).Str("key", a.Name).Msg("uploading artifact")

		_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(a.Name),
			Body:        strings.NewReader(a.Body),
			ContentType: aws.String("text/plain"),
		})
		if err != nil {
			return fmt.Errorf("upload %s to bucket %s: %w", a.Name, u.bucket, err)
		}
	}
	return nil
}
