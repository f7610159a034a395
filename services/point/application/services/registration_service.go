package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/ecoleta/pkg/logger"
	"github.com/ghuser/ecoleta/pkg/telemetry"
	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
	"github.com/ghuser/ecoleta/services/point/domain/models"
	"github.com/ghuser/ecoleta/services/point/domain/repositories"
	domainsvcs "github.com/ghuser/ecoleta/services/point/domain/services"
)

// DefaultImageStoreTimeout bounds the image store call when no timeout is configured.
const DefaultImageStoreTimeout = 10 * time.Second

// RegistrationService turns a raw submission into a persisted point.
// Event publishing is handled by the repository layer (outbox pattern).
type RegistrationService struct {
	repo       repositories.PointRepository
	images     repositories.ImageStore
	catalog    *CatalogService
	log        logger.Logger
	timeout    time.Duration
	registered metric.Int64Counter
	failures   metric.Int64Counter
}

func NewRegistrationService(
	repo repositories.PointRepository,
	images repositories.ImageStore,
	catalog *CatalogService,
	log logger.Logger,
	imageTimeout time.Duration,
) *RegistrationService {
	if imageTimeout <= 0 {
		imageTimeout = DefaultImageStoreTimeout
	}
	meter := telemetry.Meter()
	// Instrument errors only occur for invalid names.
	registered, _ := meter.Int64Counter("points.registered",
		metric.WithDescription("Collection points successfully registered"))
	failures, _ := meter.Int64Counter("points.registration_failures",
		metric.WithDescription("Rejected or failed point registrations by reason"))

	return &RegistrationService{
		repo:       repo,
		images:     images,
		catalog:    catalog,
		log:        log,
		timeout:    imageTimeout,
		registered: registered,
		failures:   failures,
	}
}

// Register validates sub, stores its image, then creates the point and its item
// associations as one unit. Nothing is stored when validation fails, and no point
// row is written when the image store fails.
//
// Errors: *FieldError (ErrInvalidSubmission), ErrUnknownItem, ErrImageStorage
// (optionally also ErrImageRejected or ErrImageTooLarge).
func (s *RegistrationService) Register(ctx context.Context, sub models.Submission) (models.PointID, error) {
	draft, err := domainsvcs.ValidateSubmission(sub)
	if err != nil {
		return 0, s.fail(ctx, "validation", err)
	}

	items, err := domainsvcs.NormalizeItems(sub.Items)
	if err != nil {
		return 0, s.fail(ctx, "validation", err)
	}

	if err := s.catalog.Validate(ctx, items); err != nil {
		return 0, s.fail(ctx, "unknown_item", err)
	}

	ref, err := s.storeImage(ctx, sub.Image)
	if err != nil {
		return 0, s.fail(ctx, "image_storage", fmt.Errorf("%w: %w", pointdomain.ErrImageStorage, err))
	}
	draft.ImageRef = ref

	id, err := s.repo.CreatePoint(ctx, draft, items)
	if err != nil {
		// The stored image is left in place; it is unreachable without a point.
		s.log.WarnContext(ctx, "point create failed after image was stored",
			"image_ref", ref,
			"error", err,
		)
		reason := "repository"
		if errors.Is(err, pointdomain.ErrUnknownItem) {
			reason = "unknown_item"
		}
		return 0, s.fail(ctx, reason, fmt.Errorf("create point: %w", err))
	}

	s.registered.Add(ctx, 1)
	s.log.InfoContext(ctx, "point registered",
		"point_id", id,
		"items", len(items),
		"uf", draft.UF,
	)
	return id, nil
}

type putResult struct {
	ref string
	err error
}

// storeImage returns within the configured timeout even when the store ignores
// context cancellation.
func (s *RegistrationService) storeImage(ctx context.Context, upload *models.ImageUpload) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan putResult, 1)
	go func() {
		ref, err := s.images.Put(ctx, upload)
		done <- putResult{ref: ref, err: err}
	}()

	select {
	case res := <-done:
		return res.ref, res.err
	case <-ctx.Done():
		return "", fmt.Errorf("image store: %w", ctx.Err())
	}
}

func (s *RegistrationService) fail(ctx context.Context, reason string, err error) error {
	s.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	s.log.DebugContext(ctx, "point registration rejected", "reason", reason, "error", err)
	return err
}
