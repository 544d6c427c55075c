// Package menu holds the read-mostly catalog records: menu items, the
// restaurant history timeline and awards. These have no lifecycle or derived
// state, so they are plain records rather than guarded aggregates.
package menu

import (
	"time"

	"trattoria/internal/core/domain/model/kernel"
)

// Item is a dish on the menu. Price is what new orders snapshot from; changing
// it never touches historical orders.
type Item struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Category    string
	ImageURL    string
	Available   bool
	CreatedAt   time.Time
}

// TimelineEntry is one milestone on the restaurant's history page.
type TimelineEntry struct {
	ID          kernel.UUID
	Year        string
	Title       string
	Description string
	Position    int
}

// Award is a distinction displayed on the about page.
type Award struct {
	ID           kernel.UUID
	Title        string
	Organization string
	Year         string
	Position     int
}
