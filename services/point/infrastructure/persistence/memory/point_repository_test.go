package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
	"github.com/ghuser/ecoleta/services/point/domain/models"
)

func TestPointRepository_CreateAndGet(t *testing.T) {
	repo := NewPointRepository(nil)
	ctx := context.Background()

	id, err := repo.CreatePoint(ctx, &models.Point{EntityName: "Green Corp"}, models.NewItemIDSet(3, 1))
	require.NoError(t, err)
	require.Equal(t, models.PointID(1), id)

	detail, err := repo.GetPoint(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, detail.Point.ID)
	require.Equal(t, "Green Corp", detail.Point.EntityName)
	require.Equal(t, []string{"Lamp", "Papers"}, detail.ItemTitles)
}

func TestPointRepository_UnknownItemWritesNothing(t *testing.T) {
	repo := NewPointRepository(nil)

	_, err := repo.CreatePoint(context.Background(), &models.Point{}, models.NewItemIDSet(1, 999))
	require.True(t, errors.Is(err, pointdomain.ErrUnknownItem))

	points, links := repo.Count()
	require.Zero(t, points)
	require.Zero(t, links)
}

func TestPointRepository_EmptyItemsWritesNothing(t *testing.T) {
	repo := NewPointRepository(nil)

	for _, items := range []models.ItemIDSet{nil, {}} {
		_, err := repo.CreatePoint(context.Background(), &models.Point{EntityName: "x"}, items)
		require.ErrorIs(t, err, pointdomain.ErrInvalidSubmission)

		var fieldErr *pointdomain.FieldError
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "items", fieldErr.Field)
	}

	points, links := repo.Count()
	require.Zero(t, points)
	require.Zero(t, links)
}

func TestPointRepository_GetPointNotFound(t *testing.T) {
	_, err := NewPointRepository(nil).GetPoint(context.Background(), 7)
	require.True(t, errors.Is(err, pointdomain.ErrPointNotFound))
}

func TestPointRepository_ListItemsOrderedByID(t *testing.T) {
	repo := NewPointRepository([]models.Item{{ID: 3, Title: "c"}, {ID: 1, Title: "a"}, {ID: 2, Title: "b"}})
	items, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.ItemID{1, 2, 3}, []models.ItemID{items[0].ID, items[1].ID, items[2].ID})

	// Callers cannot mutate the catalog through the returned slice.
	items[0].Title = "mutated"
	again, _ := repo.ListItems(context.Background())
	require.Equal(t, "a", again[0].Title)
}

func TestPointRepository_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	repo := NewPointRepository(nil)
	const n = 50

	var wg sync.WaitGroup
	ids := make(chan models.PointID, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.CreatePoint(context.Background(), &models.Point{}, models.NewItemIDSet(2))
			if err == nil {
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[models.PointID]bool)
	for id := range ids {
		require.False(t, seen[id])
		seen[id] = true
	}
	require.Len(t, seen, n)

	points, links := repo.Count()
	require.Equal(t, n, points)
	require.Equal(t, n, links)
}

func TestPointRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewPointRepository(nil).CreatePoint(ctx, &models.Point{}, models.NewItemIDSet(1))
	require.ErrorIs(t, err, context.Canceled)
}
