package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/ecoleta/pkg/cache"
	"github.com/ghuser/ecoleta/pkg/logger"
	"github.com/ghuser/ecoleta/services/point/domain/models"
	"github.com/ghuser/ecoleta/services/point/domain/repositories"
)

// PointCache is the subset of the Redis point cache used by QueryService.
type PointCache interface {
	Get(ctx context.Context, pointID int64) (*pkgcache.CachedPoint, error)
	Set(ctx context.Context, p *pkgcache.CachedPoint) error
}

// QueryService serves point details. Reads are served from Redis when available
// and fall back to the repository on a miss or cache error.
type QueryService struct {
	repo   repositories.PointRepository
	images repositories.ImageStore
	cache  PointCache // nil disables caching
	log    logger.Logger
}

func NewQueryService(repo repositories.PointRepository, images repositories.ImageStore, cache PointCache, log logger.Logger) *QueryService {
	return &QueryService{repo: repo, images: images, cache: cache, log: log}
}

// GetPointDetail uses a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query the repository.
//  3. Asynchronously warm the cache with the repository result.
//
// Returns ErrPointNotFound when the id is unknown.
func (s *QueryService) GetPointDetail(ctx context.Context, id models.PointID) (*PointView, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, int64(id))
		if err == nil {
			return s.view(fromCached(cached)), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "point cache read failed", "point_id", id, "error", err)
		}
	}

	detail, err := s.repo.GetPoint(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get point: %w", err)
	}

	if s.cache != nil {
		go func() {
			if err := s.cache.Set(context.WithoutCancel(ctx), toCached(detail)); err != nil {
				s.log.WarnContext(ctx, "point cache write failed", "point_id", id, "error", err)
			}
		}()
	}

	return s.view(detail), nil
}

// Warm loads a point from the repository and writes it to the cache synchronously.
// Called by the worker on point.created; a nil cache makes it a no-op.
func (s *QueryService) Warm(ctx context.Context, id models.PointID) error {
	if s.cache == nil {
		return nil
	}
	detail, err := s.repo.GetPoint(ctx, id)
	if err != nil {
		return fmt.Errorf("get point: %w", err)
	}
	if err := s.cache.Set(ctx, toCached(detail)); err != nil {
		return fmt.Errorf("warm cache: %w", err)
	}
	return nil
}

func (s *QueryService) view(detail *models.PointDetail) *PointView {
	return &PointView{
		Point:    detail.Point,
		ImageURL: s.images.PublicURL(detail.Point.ImageRef),
		Items:    detail.ItemTitles,
	}
}

func toCached(d *models.PointDetail) *pkgcache.CachedPoint {
	p := d.Point
	return &pkgcache.CachedPoint{
		ID:        int64(p.ID),
		Name:      p.EntityName,
		Email:     p.Email,
		Whatsapp:  p.Whatsapp,
		Image:     p.ImageRef,
		Latitude:  p.Latitude(),
		Longitude: p.Longitude(),
		City:      p.City,
		UF:        p.UF,
		CreatedAt: p.CreatedAt,
		Items:     d.ItemTitles,
	}
}

func fromCached(c *pkgcache.CachedPoint) *models.PointDetail {
	items := c.Items
	if items == nil {
		items = []string{}
	}
	return &models.PointDetail{
		Point: models.Point{
			ID:         models.PointID(c.ID),
			EntityName: c.Name,
			Email:      c.Email,
			Whatsapp:   c.Whatsapp,
			ImageRef:   c.Image,
			Location:   orb.Point{c.Longitude, c.Latitude},
			City:       c.City,
			UF:         c.UF,
			CreatedAt:  c.CreatedAt,
		},
		ItemTitles: items,
	}
}
