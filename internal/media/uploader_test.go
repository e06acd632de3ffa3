// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kreeda/internal/platform/apperr"
)

// # Test Doubles

// fakePutter captures the put request instead of talking to object storage.
type fakePutter struct {
	lastInput *s3.PutObjectInput
	lastBody  string
	err       error
}

func (putter *fakePutter) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	putter.lastInput = input
	if input.Body != nil {
		content, _ := io.ReadAll(input.Body)
		putter.lastBody = string(content)
	}
	if putter.err != nil {
		return nil, putter.err
	}
	return &s3.PutObjectOutput{}, nil
}

// # Key Derivation

/*
TestObjectKey verifies that stored keys combine the fixed parent folder, the
caller-chosen logical name, and the original file's extension.
*/
func TestObjectKey(t *testing.T) {
	tests := []struct {
		name             string
		logicalName      string
		originalFilename string
		want             string
	}{
		{"png_extension", "jersey-photo", "IMG_2041.png", "uploads/jersey-photo.png"},
		{"jpeg_extension", "team-banner", "banner.final.jpeg", "uploads/team-banner.jpeg"},
		{"no_extension", "scorecard", "scan", "uploads/scorecard"},
		{"dotted_logical_name", "v2.roster", "roster.pdf", "uploads/v2.roster.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, objectKey(tt.logicalName, tt.originalFilename))
		})
	}
}

// # Upload

/*
TestS3Uploader_Upload verifies the put request contents and the returned
public viewer URL.
*/
func TestS3Uploader_Upload(t *testing.T) {
	putter := &fakePutter{}
	uploader := &S3Uploader{
		client:        putter,
		bucket:        "kreeda-media",
		publicBaseURL: "https://cdn.kreeda.app",
	}

	url, err := uploader.Upload(context.Background(), strings.NewReader("binary-bytes"), "jersey-photo", "IMG_2041.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.kreeda.app/uploads/jersey-photo.png", url)

	require.NotNil(t, putter.lastInput)
	assert.Equal(t, "kreeda-media", *putter.lastInput.Bucket)
	assert.Equal(t, "uploads/jersey-photo.png", *putter.lastInput.Key)
	require.NotNil(t, putter.lastInput.ContentType)
	assert.Equal(t, "image/png", *putter.lastInput.ContentType)
	assert.Equal(t, "binary-bytes", putter.lastBody)
}

/*
TestS3Uploader_Upload_OmitsEmptyContentType verifies that a blank content
type is not forwarded to storage.
*/
func TestS3Uploader_Upload_OmitsEmptyContentType(t *testing.T) {
	putter := &fakePutter{}
	uploader := &S3Uploader{client: putter, bucket: "kreeda-media"}

	_, err := uploader.Upload(context.Background(), strings.NewReader("x"), "scan", "scan.pdf", "")
	require.NoError(t, err)
	assert.Nil(t, putter.lastInput.ContentType)
}

/*
TestS3Uploader_Upload_StorageFailure verifies that any storage error maps to
the upload-failed error with its 502 wire status.
*/
func TestS3Uploader_Upload_StorageFailure(t *testing.T) {
	putter := &fakePutter{err: assert.AnError}
	uploader := &S3Uploader{client: putter, bucket: "kreeda-media"}

	_, err := uploader.Upload(context.Background(), strings.NewReader("x"), "jersey-photo", "IMG_2041.png", "image/png")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UPLOAD_FAILED", ae.Code)
	assert.Equal(t, http.StatusBadGateway, ae.HTTPStatus)
}

/*
TestNewS3Uploader_RequiresBucket verifies construction fails fast without a
bucket name.
*/
func TestNewS3Uploader_RequiresBucket(t *testing.T) {
	_, err := NewS3Uploader(context.Background(), Settings{Region: "auto"})
	require.Error(t, err)
}
