package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
	"github.com/ghuser/ecoleta/services/point/domain/models"
	"github.com/ghuser/ecoleta/services/point/domain/repositories"
)

const catalogCacheKey = "catalog"

// CatalogService serves the seeded item catalog from an in-process snapshot.
// The catalog is written only by migrations, so a TTL-bound snapshot is safe.
type CatalogService struct {
	repo     repositories.PointRepository
	snapshot *gocache.Cache
	ttl      time.Duration
	baseURL  string
}

// NewCatalogService returns a CatalogService whose snapshot expires after ttl.
// baseURL is the public origin icon URLs are resolved against.
func NewCatalogService(repo repositories.PointRepository, ttl time.Duration, baseURL string) *CatalogService {
	return &CatalogService{
		repo:     repo,
		snapshot: gocache.New(ttl, 2*ttl),
		ttl:      ttl,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// List returns the catalog in id order with image_url resolved to {base}/uploads/{image}.
func (s *CatalogService) List(ctx context.Context) ([]ItemView, error) {
	items, err := s.items(ctx, false)
	if err != nil {
		return nil, err
	}
	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = ItemView{
			ID:       item.ID,
			Title:    item.Title,
			ImageURL: s.baseURL + "/uploads/" + url.PathEscape(item.ImageRef),
		}
	}
	return views, nil
}

// Validate returns ErrUnknownItem naming the first id missing from the catalog.
// A miss reloads the snapshot once before failing.
func (s *CatalogService) Validate(ctx context.Context, ids models.ItemIDSet) error {
	items, err := s.items(ctx, false)
	if err != nil {
		return err
	}
	missing, ok := firstMissing(items, ids)
	if ok {
		return nil
	}

	if items, err = s.items(ctx, true); err != nil {
		return err
	}
	if missing, ok = firstMissing(items, ids); !ok {
		return fmt.Errorf("%w: %d", pointdomain.ErrUnknownItem, missing)
	}
	return nil
}

func (s *CatalogService) items(ctx context.Context, refresh bool) ([]models.Item, error) {
	if !refresh {
		if v, found := s.snapshot.Get(catalogCacheKey); found {
			return v.([]models.Item), nil
		}
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	s.snapshot.Set(catalogCacheKey, items, s.ttl)
	return items, nil
}

func firstMissing(items []models.Item, ids models.ItemIDSet) (models.ItemID, bool) {
	known := make(map[models.ItemID]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return id, false
		}
	}
	return 0, true
}
