package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/ghuser/ecoleta/services/point/domain/models"
)

const (
	gcsPublicBaseURL = "https://storage.googleapis.com"
	gcsObjectPrefix  = "points/"
	gcsCacheControl  = "public, max-age=31536000, immutable"
)

// NewGCSClient returns a storage client. A non-empty endpoint targets an
// emulator without credentials; otherwise Application Default Credentials are used.
func NewGCSClient(ctx context.Context, endpoint string) (*storage.Client, error) {
	var opts []option.ClientOption
	if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint), option.WithoutAuthentication())
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: new gcs client: %w", err)
	}
	return client, nil
}

// GCSStore writes images to a Cloud Storage bucket under the points/ prefix.
// The bucket is expected to grant public read through uniform IAM.
type GCSStore struct {
	client   *storage.Client
	bucket   string
	maxBytes int64
}

func NewGCSStore(client *storage.Client, bucket string, maxBytes int64) (*GCSStore, error) {
	if client == nil {
		return nil, errors.New("storage: gcs client is nil")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("storage: gcs bucket is empty")
	}
	return &GCSStore{client: client, bucket: bucket, maxBytes: maxBytes}, nil
}

// Put uploads the image and returns its key (without the points/ prefix).
// Cancelling ctx aborts the upload.
func (s *GCSStore) Put(ctx context.Context, upload *models.ImageUpload) (string, error) {
	contentType, err := inspect(upload, s.maxBytes)
	if err != nil {
		return "", err
	}
	key, err := objectKey(upload.Filename)
	if err != nil {
		return "", err
	}

	obj := s.client.Bucket(s.bucket).Object(gcsObjectPrefix + key).If(storage.Conditions{DoesNotExist: true})
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = gcsCacheControl
	w.Metadata = map[string]string{"original_name": upload.Filename}

	if _, err := w.Write(upload.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage: write gs://%s/%s%s: %w", s.bucket, gcsObjectPrefix, key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: upload gs://%s/%s%s: %w", s.bucket, gcsObjectPrefix, key, err)
	}
	return key, nil
}

// PublicURL resolves a key to https://storage.googleapis.com/<bucket>/points/<key>.
func (s *GCSStore) PublicURL(ref string) string {
	return fmt.Sprintf("%s/%s/%s%s", gcsPublicBaseURL, s.bucket, gcsObjectPrefix, url.PathEscape(ref))
}
