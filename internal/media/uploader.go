// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media relays uploaded binaries to external S3-compatible object
storage and hands back a public viewer URL.

The relay is deliberately dumb: one streamed put per upload, no retry, any
transport or auth failure from the storage service surfaces as UPLOAD_FAILED.
*/
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/taibuivan/kreeda/internal/platform/apperr"
	"github.com/taibuivan/kreeda/internal/platform/constants"
)

// Uploader is the contract consumed by the HTTP layer.
type Uploader interface {
	// Upload streams body to object storage and returns the public URL.
	Upload(ctx context.Context, body io.Reader, logicalName, originalFilename, contentType string) (string, error)
}

// Settings holds the object storage connection parameters.
type Settings struct {
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// objectPutter is the slice of the S3 client the uploader actually uses.
type objectPutter interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader implements [Uploader] against any S3-compatible endpoint.
type S3Uploader struct {
	client        objectPutter
	bucket        string
	publicBaseURL string
}

// NewS3Uploader builds the storage client from static credentials and an
// optional custom endpoint (MinIO, R2, or AWS proper).
func NewS3Uploader(ctx context.Context, settings Settings) (*S3Uploader, error) {
	if settings.Bucket == "" {
		return nil, fmt.Errorf("media: S3 bucket is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(settings.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			settings.AccessKey,
			settings.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("media: failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(options *s3.Options) {
		if settings.Endpoint != "" {
			options.BaseEndpoint = aws.String(settings.Endpoint)
		}
	})

	return &S3Uploader{
		client:        client,
		bucket:        settings.Bucket,
		publicBaseURL: strings.TrimRight(settings.PublicBaseURL, "/"),
	}, nil
}

/*
Upload streams the binary to object storage under the fixed parent folder.

Description: The stored key is derived from the caller-chosen logical name
plus the original file's extension, e.g. "uploads/jersey-photo.png".

Parameters:
  - ctx: context.Context
  - body: io.Reader (file content)
  - logicalName: string (caller-chosen base name)
  - originalFilename: string (supplies the extension)
  - contentType: string

Returns:
  - string: Public viewer URL
  - error: apperr.UploadFailed on any storage error
*/
func (uploader *S3Uploader) Upload(ctx context.Context, body io.Reader, logicalName, originalFilename, contentType string) (string, error) {
	key := objectKey(logicalName, originalFilename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(uploader.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := uploader.client.PutObject(ctx, input); err != nil {
		return "", apperr.UploadFailed(err)
	}

	return uploader.publicBaseURL + "/" + key, nil
}

// objectKey derives the stored key from the logical name and the original
// file's extension. Extension-less originals keep the bare logical name.
func objectKey(logicalName, originalFilename string) string {
	return constants.MediaKeyPrefix + logicalName + path.Ext(originalFilename)
}
