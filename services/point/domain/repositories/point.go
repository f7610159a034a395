package repositories

import (
	"context"

	"github.com/ghuser/ecoleta/services/point/domain/models"
)

// PointRepository is the persistence interface for points, their item
// associations and the read-only item catalog. The domain layer owns this
// interface; infrastructure implements it.
type PointRepository interface {
	// CreatePoint inserts point and one association per id in items as a single
	// atomic unit and returns the generated id. If any id is not in the catalog
	// it returns ErrUnknownItem and persists nothing; an empty items set is
	// rejected with a FieldError for "items".
	CreatePoint(ctx context.Context, point *models.Point, items models.ItemIDSet) (models.PointID, error)

	// GetPoint returns the point with its item titles in catalog order, or
	// ErrPointNotFound.
	GetPoint(ctx context.Context, id models.PointID) (*models.PointDetail, error)

	// ListItems returns the full catalog in insertion order.
	ListItems(ctx context.Context) ([]models.Item, error)
}
