package models

// ItemID identifies a catalog entry.
type ItemID int64

// Item is a catalog entry describing a category of collectible waste.
// Items are seeded once and never written by the registration path.
type Item struct {
	ID       ItemID
	Title    string
	ImageRef string // static icon file name, e.g. "lamps.svg"
}
