package queries

import (
	"errors"
	"strings"
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/errs"
	"trattoria/internal/pkg/guard"
)

var (
	ErrGetMenuItemsQueryIsNotConstructed = errors.New(
		"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
	)
)

// GetMenuItemsQuery retrieves available menu items, either the whole menu
// or a single category.
//
// Example:
//
//	query := NewGetMenuItemsQuery()
//	handler := NewGetMenuItemsQueryHandler(db)
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load menu: %w", err)
//	}
//
//	pizzas, _ := NewGetMenuItemsByCategoryQuery("pizza")
//	pizzaItems, err := handler.Handle(ctx, pizzas)
type GetMenuItemsQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a query for the complete menu.
func NewGetMenuItemsQuery() GetMenuItemsQuery {
	return GetMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetMenuItemsByCategoryQuery creates a query for a single menu category.
func NewGetMenuItemsByCategoryQuery(category string) (GetMenuItemsQuery, error) {
	if strings.TrimSpace(category) == "" {
		return GetMenuItemsQuery{}, errs.NewValueIsRequiredError("category")
	}

	return GetMenuItemsQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

// Category returns the category filter, empty for the whole menu.
func (q GetMenuItemsQuery) Category() string {
	return q.category
}

// MenuItemResponse represents one dish as shown on the public menu.
type MenuItemResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       string
	Category    string
	ImageURL    string
	Available   bool
	CreatedAt   time.Time
}
