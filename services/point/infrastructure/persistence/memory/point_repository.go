// Package memory provides a mutex-guarded in-process PointRepository for tests
// and local runs without PostgreSQL.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
	"github.com/ghuser/ecoleta/services/point/domain/models"
)

// SeedCatalog mirrors the rows inserted by the items seed migration.
func SeedCatalog() []models.Item {
	return []models.Item{
		{ID: 1, Title: "Lamp", ImageRef: "lamps.svg"},
		{ID: 2, Title: "Batteries", ImageRef: "batteries.svg"},
		{ID: 3, Title: "Papers", ImageRef: "papers.svg"},
		{ID: 4, Title: "Electronic Waste", ImageRef: "electronic.svg"},
		{ID: 5, Title: "Organic Waste", ImageRef: "organic.svg"},
		{ID: 6, Title: "Kitchen Oil", ImageRef: "oil.svg"},
	}
}

// PointRepository keeps points and their associations in memory.
type PointRepository struct {
	mu     sync.RWMutex
	items  []models.Item // ordered by id
	points map[models.PointID]models.Point
	links  map[models.PointID]models.ItemIDSet
	nextID models.PointID
}

// NewPointRepository returns a repository whose catalog is the given items.
// A nil catalog uses SeedCatalog.
func NewPointRepository(catalog []models.Item) *PointRepository {
	if catalog == nil {
		catalog = SeedCatalog()
	}
	items := slices.Clone(catalog)
	slices.SortFunc(items, func(a, b models.Item) int { return cmp.Compare(a.ID, b.ID) })
	return &PointRepository{
		items:  items,
		points: make(map[models.PointID]models.Point),
		links:  make(map[models.PointID]models.ItemIDSet),
		nextID: 1,
	}
}

// CreatePoint checks every item id before writing so a failure leaves no trace.
// An empty item set is rejected with a FieldError for "items".
func (r *PointRepository) CreatePoint(ctx context.Context, point *models.Point, items models.ItemIDSet) (models.PointID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, pointdomain.NewFieldError("items", "at least one item is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range items {
		if !r.hasItem(id) {
			return 0, fmt.Errorf("%w: %d", pointdomain.ErrUnknownItem, id)
		}
	}

	id := r.nextID
	r.nextID++

	stored := *point
	stored.ID = id
	r.points[id] = stored
	r.links[id] = slices.Clone(items)
	return id, nil
}

// GetPoint returns ErrPointNotFound for unknown ids.
func (r *PointRepository) GetPoint(ctx context.Context, id models.PointID) (*models.PointDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	point, ok := r.points[id]
	if !ok {
		return nil, pointdomain.ErrPointNotFound
	}

	linked := r.links[id]
	titles := make([]string, 0, len(linked))
	for _, item := range r.items {
		if linked.Contains(item.ID) {
			titles = append(titles, item.Title)
		}
	}
	return &models.PointDetail{Point: point, ItemTitles: titles}, nil
}

func (r *PointRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

// Count returns the number of stored points and associations.
func (r *PointRepository) Count() (points, links int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, set := range r.links {
		links += len(set)
	}
	return len(r.points), links
}

func (r *PointRepository) hasItem(id models.ItemID) bool {
	_, found := slices.BinarySearchFunc(r.items, id, func(item models.Item, id models.ItemID) int {
		return cmp.Compare(item.ID, id)
	})
	return found
}
