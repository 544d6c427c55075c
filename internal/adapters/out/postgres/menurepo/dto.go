// Package menurepo persists the site content catalog: menu items, the
// history timeline and the awards list. These records are reference data
// loaded by the seed command and read by the query handlers.
package menurepo

import (
	"time"

	"trattoria/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents one persisted dish of the menu.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	Category    string          `gorm:"index"`
	ImageURL    string          `gorm:"column:image_url"`
	Available   bool
	CreatedAt   time.Time
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// TimelineEntryDTO represents one persisted milestone of the restaurant's
// history.
type TimelineEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year        string
	Title       string
	Description string
	Position    int `gorm:"index"`
}

// TableName specifies the database table name for timeline entries.
func (TimelineEntryDTO) TableName() string {
	return "timeline_entries"
}

// AwardDTO represents one persisted award or recognition.
type AwardDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string
	Organization string
	Year         string
	Position     int `gorm:"index"`
}

// TableName specifies the database table name for awards.
func (AwardDTO) TableName() string {
	return "awards"
}

func menuItemFromDomain(item menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID.Bytes(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.Decimal(),
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
	}
}

func timelineEntryFromDomain(entry menu.TimelineEntry) TimelineEntryDTO {
	return TimelineEntryDTO{
		ID:          entry.ID.Bytes(),
		Year:        entry.Year,
		Title:       entry.Title,
		Description: entry.Description,
		Position:    entry.Position,
	}
}

func awardFromDomain(award menu.Award) AwardDTO {
	return AwardDTO{
		ID:           award.ID.Bytes(),
		Title:        award.Title,
		Organization: award.Organization,
		Year:         award.Year,
		Position:     award.Position,
	}
}
