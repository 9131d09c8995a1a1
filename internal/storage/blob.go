package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/factupro/invoice-api/internal/domain"
)

// BlobStore stores uploaded invoice documents.
type BlobStore interface {
	// Upload decodes base64 content and stores it under a fresh key, returning
	// the public locator of the new object.
	Upload(ctx context.Context, content, extension string) (string, error)

	// Delete removes the object at the given locator. Deleting a locator that
	// no longer exists is not an error.
	Delete(ctx context.Context, locator string) error
}

// s3API is the slice of the S3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// contentTypes is the closed set of accepted upload extensions.
var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"pdf":  "application/pdf",
}

// S3BlobStore implements BlobStore on an S3 bucket.
type S3BlobStore struct {
	client  s3API
	bucket  string
	baseURL string
}

// NewS3BlobStore creates a blob store over the given bucket. baseURL is the
// public address objects are served from; when empty, the bucket's
// virtual-hosted S3 URL is used.
func NewS3BlobStore(client s3API, bucket, baseURL string) *S3BlobStore {
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &S3BlobStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Upload stores base64-encoded content under a fresh key in the invoices/
// namespace and returns its public URL. The extension must be in the closed
// accepted set; anything else fails before any network call.
func (s *S3BlobStore) Upload(ctx context.Context, content, extension string) (string, error) {
	contentType, ok := contentTypes[extension]
	if !ok {
		return "", fmt.Errorf("%w: .%s", domain.ErrUnsupportedFileType, extension)
	}

	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return "", fmt.Errorf("failed to decode file content: %w", err)
	}

	key := fmt.Sprintf("invoices/%s.%s", uuid.NewString(), extension)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(data),
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String("inline"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

// Delete removes the object behind the locator. S3 treats a delete of a
// missing key as success, and so does this method.
func (s *S3BlobStore) Delete(ctx context.Context, locator string) error {
	key := strings.TrimPrefix(locator, s.baseURL+"/")
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
