package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/ecoleta/pkg/app"
	"github.com/ghuser/ecoleta/pkg/cache"
	"github.com/ghuser/ecoleta/pkg/config"
	"github.com/ghuser/ecoleta/pkg/logger"
	"github.com/ghuser/ecoleta/services/point/domain/repositories"
	"github.com/ghuser/ecoleta/services/point/infrastructure/persistence/memory"
	"github.com/ghuser/ecoleta/services/point/infrastructure/persistence/postgres"
	"github.com/ghuser/ecoleta/services/point/infrastructure/storage"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog      *CatalogService
	Registration *RegistrationService
	Query        *QueryService
}

// Deps lists the infrastructure a Services container is built from.
type Deps struct {
	Repo         repositories.PointRepository
	Images       repositories.ImageStore
	Cache        PointCache // optional
	Logger       logger.Logger
	PublicURL    string
	CatalogTTL   time.Duration
	ImageTimeout time.Duration
}

// NewWithDeps wires the services around explicit dependencies.
func NewWithDeps(d Deps) *Services {
	if d.Logger == nil {
		d.Logger = logger.Discard()
	}
	if d.CatalogTTL <= 0 {
		d.CatalogTTL = 10 * time.Minute
	}
	catalog := NewCatalogService(d.Repo, d.CatalogTTL, d.PublicURL)
	return &Services{
		Catalog:      catalog,
		Registration: NewRegistrationService(d.Repo, d.Images, catalog, d.Logger, d.ImageTimeout),
		Query:        NewQueryService(d.Repo, d.Images, d.Cache, d.Logger),
	}
}

// New wires all point application services with infrastructure from the Application container.
// A nil Db selects the in-memory repository; a nil Redis disables the point cache.
func New(a *app.Application) (*Services, error) {
	cfg := a.Config

	var repo repositories.PointRepository
	if a.Db != nil {
		repo = postgres.NewPointRepository(a.Db, a.EventBus)
	} else {
		a.Logger.Warn("no database configured; points are kept in memory")
		repo = memory.NewPointRepository(nil)
	}

	images, err := NewImageStore(context.Background(), a)
	if err != nil {
		return nil, err
	}

	var pointCache PointCache
	if a.Redis != nil {
		pointCache = cache.NewPointCache(a.Redis)
	}

	return NewWithDeps(Deps{
		Repo:         repo,
		Images:       images,
		Cache:        pointCache,
		Logger:       a.Logger,
		PublicURL:    cfg.PublicBaseURL,
		CatalogTTL:   cfg.CatalogCacheTTL,
		ImageTimeout: cfg.ImageStoreTimeout,
	}), nil
}

// NewImageStore selects the backend named by IMAGE_STORE_BACKEND.
func NewImageStore(ctx context.Context, a *app.Application) (repositories.ImageStore, error) {
	cfg := a.Config
	switch cfg.ImageStoreBackend {
	case config.ImageBackendGCS:
		client := a.GCS
		if client == nil {
			var err error
			if client, err = storage.NewGCSClient(ctx, cfg.GCSEndpoint); err != nil {
				return nil, err
			}
			a.GCS = client
		}
		return storage.NewGCSStore(client, cfg.GCSBucket, cfg.ImageMaxBytes)
	case config.ImageBackendDisk, "":
		return storage.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL, cfg.ImageMaxBytes)
	default:
		return nil, fmt.Errorf("unknown image store backend %q", cfg.ImageStoreBackend)
	}
}
