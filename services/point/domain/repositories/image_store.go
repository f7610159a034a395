package repositories

import (
	"context"

	"github.com/ghuser/ecoleta/services/point/domain/models"
)

// ImageStore persists uploaded point photos.
type ImageStore interface {
	// Put stores the upload and returns its stable reference. Implementations
	// return ErrImageRejected for non-image payloads and ErrImageTooLarge when
	// the payload exceeds their limit.
	Put(ctx context.Context, upload *models.ImageUpload) (string, error)

	// PublicURL resolves a reference returned by Put into a public URL.
	PublicURL(ref string) string
}
