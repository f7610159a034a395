package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghuser/ecoleta/services/point/domain/models"
)

// DiskStore writes images to a local directory served under /uploads.
type DiskStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewDiskStore creates dir if needed. baseURL is the public origin, e.g. "http://localhost:8080".
func NewDiskStore(dir, baseURL string, maxBytes int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}
	return &DiskStore{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

// Dir returns the directory images are written to.
func (s *DiskStore) Dir() string { return s.dir }

// Put stores the upload and returns its key.
func (s *DiskStore) Put(ctx context.Context, upload *models.ImageUpload) (string, error) {
	if _, err := inspect(upload, s.maxBytes); err != nil {
		return "", err
	}
	key, err := objectKey(upload.Filename)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: create %s: %w", key, err)
	}
	if _, err := f.Write(upload.Data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("storage: write %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("storage: close %s: %w", key, err)
	}
	return key, nil
}

// PublicURL resolves a key to {baseURL}/uploads/{key}.
func (s *DiskStore) PublicURL(ref string) string {
	return s.baseURL + "/uploads/" + url.PathEscape(ref)
}
