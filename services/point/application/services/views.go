package services

import "github.com/ghuser/ecoleta/services/point/domain/models"

// ItemView is a catalog entry with its icon URL resolved.
type ItemView struct {
	ID       models.ItemID
	Title    string
	ImageURL string
}

// PointView is the read projection served for a single point.
type PointView struct {
	Point    models.Point
	ImageURL string
	Items    []string // accepted item titles in catalog order
}
