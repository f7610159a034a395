package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/ecoleta/pkg/cache"
	"github.com/ghuser/ecoleta/services/point/domain/models"
	"github.com/ghuser/ecoleta/services/point/domain/repositories"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// fakeImageStore records puts and can fail or block on demand.
type fakeImageStore struct {
	mu      sync.Mutex
	puts    int
	err     error
	release chan struct{} // when non-nil, Put blocks until closed, ignoring ctx
}

func (f *fakeImageStore) Put(_ context.Context, upload *models.ImageUpload) (string, error) {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.puts++
	return fmt.Sprintf("img%d-%s", f.puts, upload.Filename), nil
}

func (f *fakeImageStore) PublicURL(ref string) string {
	return "https://cdn.test/" + ref
}

func (f *fakeImageStore) Puts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

// fakePointCache is an in-memory PointCache.
type fakePointCache struct {
	mu      sync.Mutex
	entries map[int64]*pkgcache.CachedPoint
	getErr  error
	sets    chan int64
}

func newFakePointCache() *fakePointCache {
	return &fakePointCache{entries: make(map[int64]*pkgcache.CachedPoint), sets: make(chan int64, 16)}
}

func (c *fakePointCache) Get(_ context.Context, id int64) (*pkgcache.CachedPoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	p, ok := c.entries[id]
	if !ok {
		return nil, redis.Nil
	}
	return p, nil
}

func (c *fakePointCache) Set(_ context.Context, p *pkgcache.CachedPoint) error {
	c.mu.Lock()
	c.entries[p.ID] = p
	c.mu.Unlock()
	c.sets <- p.ID
	return nil
}

// countingRepo counts ListItems calls and can advertise extra catalog items
// that the underlying repository does not hold.
type countingRepo struct {
	repositories.PointRepository
	mu        sync.Mutex
	listCalls int
	extra     []models.Item
	getErr    error
}

func (r *countingRepo) ListItems(ctx context.Context) ([]models.Item, error) {
	r.mu.Lock()
	r.listCalls++
	extra := r.extra
	r.mu.Unlock()
	items, err := r.PointRepository.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return append(items, extra...), nil
}

func (r *countingRepo) GetPoint(ctx context.Context, id models.PointID) (*models.PointDetail, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.PointRepository.GetPoint(ctx, id)
}

func (r *countingRepo) ListCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listCalls
}

var errStoreDown = errors.New("bucket unavailable")
