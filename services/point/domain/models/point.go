package models

import (
	"time"

	"github.com/paulmach/orb"
)

// PointID identifies a registered collection point. Assigned by storage on create.
type PointID int64

// Point is a registered physical waste-collection location.
// Points are created once through registration and never updated.
type Point struct {
	ID         PointID
	EntityName string
	Email      string
	Whatsapp   string
	ImageRef   string    // key returned by the image store
	Location   orb.Point // {longitude, latitude}
	City       string
	UF         string
	CreatedAt  time.Time
}

// Latitude returns the point's latitude in degrees.
func (p *Point) Latitude() float64 { return p.Location.Lat() }

// Longitude returns the point's longitude in degrees.
func (p *Point) Longitude() float64 { return p.Location.Lon() }

// PointDetail is the read projection of a point: its fields plus the titles
// of the items it accepts, in catalog order.
type PointDetail struct {
	Point      Point
	ItemTitles []string
}
