package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicPointCreated is the Watermill topic published when a Point is registered.
const TopicPointCreated = "point.created"

// PointCreatedEvent is published in the same transaction that inserts the point
// and its item associations, so consumers never see an event for a rolled-back point.
type PointCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	PointID    int64     `json:"point_id"`
	ItemIDs    []int64   `json:"item_ids"`
	City       string    `json:"city"`
	UF         string    `json:"uf"`
	OccurredAt time.Time `json:"occurred_at"`
}
