package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paulmach/orb"

	"github.com/ghuser/ecoleta/pkg/database"
	"github.com/ghuser/ecoleta/pkg/events"
	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
	domainevents "github.com/ghuser/ecoleta/services/point/domain/events"
	"github.com/ghuser/ecoleta/services/point/domain/models"
	"github.com/ghuser/ecoleta/services/point/infrastructure/persistence/postgres/db"
)

const pgForeignKeyViolation = "23503"

// PointRepository implements repositories.PointRepository against PostgreSQL.
type PointRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewPointRepository returns a PointRepository backed by the given connection pool
// and event bus. A nil bus disables PointCreatedEvent publishing.
func NewPointRepository(database *database.Database, bus *events.EventBus) *PointRepository {
	return &PointRepository{db: database, bus: bus}
}

// CreatePoint inserts the point and one association per item inside a single
// transaction. An unknown item id rolls the whole write back and returns ErrUnknownItem.
// An empty item set is rejected before any write.
func (r *PointRepository) CreatePoint(ctx context.Context, point *models.Point, items models.ItemIDSet) (models.PointID, error) {
	if len(items) == 0 {
		return 0, pointdomain.NewFieldError("items", "at least one item is required")
	}
	var id int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		var err error
		id, err = q.InsertPoint(ctx, db.InsertPointParams{
			Name:      point.EntityName,
			Email:     point.Email,
			Whatsapp:  point.Whatsapp,
			Image:     point.ImageRef,
			Latitude:  point.Latitude(),
			Longitude: point.Longitude(),
			City:      point.City,
			Uf:        point.UF,
			CreatedAt: point.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("insert point: %w", err)
		}

		for _, itemID := range items {
			if err := q.InsertPointItem(ctx, db.InsertPointItemParams{
				PointID: id,
				ItemID:  int64(itemID),
			}); err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
					return fmt.Errorf("%w: %d", pointdomain.ErrUnknownItem, itemID)
				}
				return fmt.Errorf("insert point item: %w", err)
			}
		}

		if r.bus != nil {
			if err := r.publishCreated(ctx, tx, id, point, items); err != nil {
				return fmt.Errorf("publish point created: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return models.PointID(id), nil
}

// GetPoint returns the point with its accepted item titles in catalog order.
// Returns ErrPointNotFound if no such point exists.
func (r *PointRepository) GetPoint(ctx context.Context, id models.PointID) (*models.PointDetail, error) {
	q := db.New(r.db.DB())
	row, err := q.GetPointByID(ctx, int64(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pointdomain.ErrPointNotFound
		}
		return nil, fmt.Errorf("query point: %w", err)
	}

	titles, err := q.ListPointItemTitles(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("query point items: %w", err)
	}
	if titles == nil {
		titles = []string{}
	}
	return &models.PointDetail{Point: rowToPoint(row), ItemTitles: titles}, nil
}

// ListItems returns the full catalog ordered by id.
func (r *PointRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	items := make([]models.Item, len(rows))
	for i, row := range rows {
		items[i] = models.Item{ID: models.ItemID(row.ID), Title: row.Title, ImageRef: row.Image}
	}
	return items, nil
}

func (r *PointRepository) publishCreated(ctx context.Context, tx *sql.Tx, id int64, point *models.Point, items models.ItemIDSet) error {
	event := domainevents.PointCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		PointID:    id,
		ItemIDs:    items.Int64s(),
		City:       point.City,
		UF:         point.UF,
		OccurredAt: point.CreatedAt,
	}
	msg, err := events.NewJSONMessage(ctx, event.EventID.String(), event.Version, event)
	if err != nil {
		return err
	}
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicPointCreated, msg)
}

// rowToPoint maps a db.Point to a domain models.Point.
func rowToPoint(row db.Point) models.Point {
	return models.Point{
		ID:         models.PointID(row.ID),
		EntityName: row.Name,
		Email:      row.Email,
		Whatsapp:   row.Whatsapp,
		ImageRef:   row.Image,
		Location:   orb.Point{row.Longitude, row.Latitude},
		City:       row.City,
		UF:         row.Uf,
		CreatedAt:  row.CreatedAt,
	}
}
