// Package storage holds the ImageStore backends used for point photos.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
	"github.com/ghuser/ecoleta/services/point/domain/models"
)

const (
	keyPrefixBytes  = 12
	maxNameLength   = 64
	defaultFileName = "image"
)

// inspect rejects uploads over maxBytes or whose sniffed content is not an image.
// The declared content type is ignored; the detected one is returned.
func inspect(upload *models.ImageUpload, maxBytes int64) (string, error) {
	if upload == nil || upload.Size() == 0 {
		return "", fmt.Errorf("%w: empty upload", pointdomain.ErrImageRejected)
	}
	if maxBytes > 0 && upload.Size() > maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", pointdomain.ErrImageTooLarge, upload.Size(), maxBytes)
	}

	mt := mimetype.Detect(upload.Data)
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return mt.String(), nil
		}
	}
	return "", fmt.Errorf("%w: detected %s", pointdomain.ErrImageRejected, mt.String())
}

// objectKey returns "<24 hex chars>-<sanitized name>". The random prefix keeps
// keys unique when clients upload files with the same name.
func objectKey(filename string) (string, error) {
	b := make([]byte, keyPrefixBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return hex.EncodeToString(b) + "-" + sanitizeName(filename), nil
}

func sanitizeName(filename string) string {
	// Clients may send Windows paths; normalize separators before taking the base.
	name := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteByte('-')
		}
		if sb.Len() >= maxNameLength {
			break
		}
	}
	out := strings.Trim(sb.String(), ".-")
	if out == "" {
		return defaultFileName
	}
	return out
}
