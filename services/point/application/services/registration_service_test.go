package services

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ghuser/ecoleta/pkg/logger"
	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
	"github.com/ghuser/ecoleta/services/point/domain/models"
	"github.com/ghuser/ecoleta/services/point/infrastructure/persistence/memory"
)

type harness struct {
	svc    *Services
	repo   *memory.PointRepository
	images *fakeImageStore
	logs   *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	repo := memory.NewPointRepository(nil)
	images := &fakeImageStore{}
	logs := &bytes.Buffer{}
	svc := NewWithDeps(Deps{
		Repo:         repo,
		Images:       images,
		Logger:       logger.NewJSON(logs, "info"),
		PublicURL:    "http://localhost:8080",
		ImageTimeout: time.Second,
	})
	return &harness{svc: svc, repo: repo, images: images, logs: logs}
}

func validSubmission() models.Submission {
	return models.Submission{
		Name:      "Green Corp",
		Email:     "contact@greencorp.example",
		Whatsapp:  "5511999999999",
		UF:        "SP",
		City:      "São Paulo",
		Latitude:  "-23.5",
		Longitude: "-46.6",
		Items:     "1,3",
		Image:     &models.ImageUpload{Filename: "front.png", ContentType: "image/png", Data: pngBytes},
	}
}

func (h *harness) requireNothingStored(t *testing.T) {
	t.Helper()
	points, links := h.repo.Count()
	require.Zero(t, points, "no point row expected")
	require.Zero(t, links, "no association rows expected")
}

func TestRegister_RoundTripsThroughQuery(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	id, err := h.svc.Registration.Register(ctx, validSubmission())
	require.NoError(t, err)
	require.Positive(t, int64(id))

	view, err := h.svc.Query.GetPointDetail(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Green Corp", view.Point.EntityName)
	require.Equal(t, "São Paulo", view.Point.City)
	require.Equal(t, -23.5, view.Point.Latitude())
	require.Equal(t, -46.6, view.Point.Longitude())
	require.Equal(t, []string{"Lamp", "Papers"}, view.Items)
	require.Equal(t, "https://cdn.test/img1-front.png", view.ImageURL)
	require.Contains(t, h.logs.String(), `"msg":"point registered"`)
}

func TestRegister_TrimsTextFields(t *testing.T) {
	h := newHarness(t)
	sub := validSubmission()
	sub.Name = "  Green Corp \t"

	id, err := h.svc.Registration.Register(context.Background(), sub)
	require.NoError(t, err)

	view, err := h.svc.Query.GetPointDetail(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Green Corp", view.Point.EntityName)
}

func TestRegister_ValidationFailuresHaveNoSideEffects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Submission)
		field  string
	}{
		{"missing name", func(s *models.Submission) { s.Name = "" }, "name"},
		{"blank email", func(s *models.Submission) { s.Email = "   " }, "email"},
		{"missing whatsapp", func(s *models.Submission) { s.Whatsapp = "" }, "whatsapp"},
		{"missing uf", func(s *models.Submission) { s.UF = "" }, "uf"},
		{"missing city", func(s *models.Submission) { s.City = "" }, "city"},
		{"non numeric latitude", func(s *models.Submission) { s.Latitude = "north" }, "latitude"},
		{"infinite longitude", func(s *models.Submission) { s.Longitude = "Inf" }, "longitude"},
		{"latitude out of range", func(s *models.Submission) { s.Latitude = "91" }, "latitude"},
		{"no image", func(s *models.Submission) { s.Image = nil }, "image"},
		{"empty image", func(s *models.Submission) { s.Image.Data = nil }, "image"},
		{"empty items", func(s *models.Submission) { s.Items = "" }, "items"},
		{"non numeric item", func(s *models.Submission) { s.Items = "1,lamp" }, "items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			sub := validSubmission()
			tt.mutate(&sub)

			_, err := h.svc.Registration.Register(context.Background(), sub)
			require.ErrorIs(t, err, pointdomain.ErrInvalidSubmission)

			var fe *pointdomain.FieldError
			require.True(t, errors.As(err, &fe))
			require.Equal(t, tt.field, fe.Field)

			require.Zero(t, h.images.Puts(), "image store must not be called")
			h.requireNothingStored(t)
		})
	}
}

func TestRegister_UnknownItemStoresNothing(t *testing.T) {
	h := newHarness(t)
	sub := validSubmission()
	sub.Items = "1,999"

	_, err := h.svc.Registration.Register(context.Background(), sub)
	require.ErrorIs(t, err, pointdomain.ErrUnknownItem)
	require.Zero(t, h.images.Puts(), "catalog check runs before the image is stored")
	h.requireNothingStored(t)
}

func TestRegister_RepositoryRejectionLogsOrphanImage(t *testing.T) {
	base := memory.NewPointRepository(nil)
	// The snapshot advertises item 7, which the repository does not hold.
	repo := &countingRepo{PointRepository: base, extra: []models.Item{{ID: 7, Title: "Ghost"}}}
	images := &fakeImageStore{}
	logs := &bytes.Buffer{}
	svc := NewWithDeps(Deps{Repo: repo, Images: images, Logger: logger.NewJSON(logs, "info")})

	sub := validSubmission()
	sub.Items = "1,7"
	_, err := svc.Registration.Register(context.Background(), sub)
	require.ErrorIs(t, err, pointdomain.ErrUnknownItem)

	points, links := base.Count()
	require.Zero(t, points)
	require.Zero(t, links)
	require.Equal(t, 1, images.Puts())
	require.Contains(t, logs.String(), "point create failed after image was stored")
	require.Contains(t, logs.String(), `"image_ref":"img1-front.png"`)
}

func TestRegister_ImageStoreFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"backend down", errStoreDown, errStoreDown},
		{"rejected type", pointdomain.ErrImageRejected, pointdomain.ErrImageRejected},
		{"too large", pointdomain.ErrImageTooLarge, pointdomain.ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.images.err = tt.err

			_, err := h.svc.Registration.Register(context.Background(), validSubmission())
			require.ErrorIs(t, err, pointdomain.ErrImageStorage)
			require.ErrorIs(t, err, tt.wantErr)
			h.requireNothingStored(t)
		})
	}
}

func TestRegister_ImageStoreTimeout(t *testing.T) {
	repo := memory.NewPointRepository(nil)
	images := &fakeImageStore{release: make(chan struct{})}
	t.Cleanup(func() { close(images.release) })

	svc := NewWithDeps(Deps{Repo: repo, Images: images, ImageTimeout: 20 * time.Millisecond})

	start := time.Now()
	_, err := svc.Registration.Register(context.Background(), validSubmission())
	require.ErrorIs(t, err, pointdomain.ErrImageStorage)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), time.Second)

	points, _ := repo.Count()
	require.Zero(t, points)
}

func TestRegister_DuplicateItemsCollapse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfN(rapid.IntRange(1, 6), 1, 20).Draw(t, "ids")

		parts := make([]string, len(ids))
		distinct := make(map[int]struct{})
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
			distinct[id] = struct{}{}
		}

		svc := NewWithDeps(Deps{Repo: memory.NewPointRepository(nil), Images: &fakeImageStore{}})
		sub := validSubmission()
		sub.Items = strings.Join(parts, ",")

		id, err := svc.Registration.Register(context.Background(), sub)
		require.NoError(t, err)

		view, err := svc.Query.GetPointDetail(context.Background(), id)
		require.NoError(t, err)
		require.Len(t, view.Items, len(distinct))
	})
}

func TestRegister_ConcurrentSubmissionsGetDistinctIDs(t *testing.T) {
	repo := memory.NewPointRepository(nil)
	svc := NewWithDeps(Deps{Repo: repo, Images: &fakeImageStore{}})
	const n = 30

	var wg sync.WaitGroup
	ids := make([]models.PointID, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sub := validSubmission()
			sub.Name = "Point " + strconv.Itoa(i)
			sub.Items = strconv.Itoa(i%6 + 1)
			ids[i], errs[i] = svc.Registration.Register(context.Background(), sub)
		}(i)
	}
	wg.Wait()

	seen := make(map[models.PointID]bool, n)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.False(t, seen[ids[i]])
		seen[ids[i]] = true

		view, err := svc.Query.GetPointDetail(context.Background(), ids[i])
		require.NoError(t, err)
		require.Equal(t, "Point "+strconv.Itoa(i), view.Point.EntityName)
		require.Len(t, view.Items, 1)
	}

	points, links := repo.Count()
	require.Equal(t, n, points)
	require.Equal(t, n, links)
}
