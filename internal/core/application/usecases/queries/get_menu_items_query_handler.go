package queries

import (
	"context"

	"trattoria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler retrieves the menu from the database.
// Only available dishes are returned; sold-out items stay hidden.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle executes the menu query, optionally filtered to one category.
// Items come back in insertion order so the menu reads the way it was seeded.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			description,
			price,
			category,
			image_url,
			available,
			created_at
		FROM menu_items
		WHERE available = TRUE
	`
	args := make([]any, 0, 1)
	if query.Category() != "" {
		sql += ` AND category = ?`
		args = append(args, query.Category())
	}
	sql += ` ORDER BY created_at, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)

	for rows.Next() {
		var (
			item  MenuItemResponse
			id    uuid.UUID
			price decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Description,
			&price,
			&item.Category,
			&item.ImageURL,
			&item.Available,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		item.ID = itemID
		item.Price = price.StringFixed(2)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
