package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// PointCacheTTL is the time-to-live for cached point details.
	PointCacheTTL = 24 * time.Hour

	pointCacheKeyPrefix = "point"
)

// CachedPoint is the denormalized point detail stored in Redis.
// Points are never updated, so entries are only ever written, not invalidated.
type CachedPoint struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Whatsapp  string    `json:"whatsapp"`
	Image     string    `json:"image"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	City      string    `json:"city"`
	UF        string    `json:"uf"`
	CreatedAt time.Time `json:"created_at"`
	Items     []string  `json:"items"` // accepted item titles in catalog order
}

// PointCache provides structured read/write operations for point cache entries.
// Key format: "point:{pointID}"
type PointCache struct {
	client *RedisClient
}

// NewPointCache creates a new PointCache backed by the given RedisClient.
func NewPointCache(r *RedisClient) *PointCache {
	return &PointCache{client: r}
}

// Get retrieves a cached point by id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *PointCache) Get(ctx context.Context, pointID int64) (*CachedPoint, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(pointID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	lat, err := strconv.ParseFloat(vals["latitude"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(vals["longitude"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse longitude: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	var items []string
	if err := json.Unmarshal([]byte(vals["items"]), &items); err != nil {
		return nil, fmt.Errorf("cache parse items: %w", err)
	}

	return &CachedPoint{
		ID:        id,
		Name:      vals["name"],
		Email:     vals["email"],
		Whatsapp:  vals["whatsapp"],
		Image:     vals["image"],
		Latitude:  lat,
		Longitude: lon,
		City:      vals["city"],
		UF:        vals["uf"],
		CreatedAt: createdAt,
		Items:     items,
	}, nil
}

// Set writes a cached point as a Redis hash with a 24-hour TTL.
// The fields and the TTL are written in one MULTI/EXEC transaction, so the hash
// never exists without an expiry.
func (c *PointCache) Set(ctx context.Context, p *CachedPoint) error {
	items := p.Items
	if items == nil {
		items = []string{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache encode items: %w", err)
	}

	key := c.key(p.ID)
	pipe := c.client.Client().TxPipeline()
	pipe.HSet(ctx, key,
		"id", strconv.FormatInt(p.ID, 10),
		"name", p.Name,
		"email", p.Email,
		"whatsapp", p.Whatsapp,
		"image", p.Image,
		"latitude", strconv.FormatFloat(p.Latitude, 'g', -1, 64),
		"longitude", strconv.FormatFloat(p.Longitude, 'g', -1, 64),
		"city", p.City,
		"uf", p.UF,
		"created_at", p.CreatedAt.UTC().Format(time.RFC3339Nano),
		"items", string(encoded),
	)
	pipe.Expire(ctx, key, PointCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// key builds the Redis key: "point:{pointID}"
func (c *PointCache) key(pointID int64) string {
	return fmt.Sprintf("%s:%d", pointCacheKeyPrefix, pointID)
}
