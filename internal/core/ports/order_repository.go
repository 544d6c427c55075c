// Package ports defines repository interfaces for the domain aggregates.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders own their line items: adding an order persists its items with it,
// and retrieval always returns the complete aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its line items.
	// The pairing is atomic: an order is never stored without its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its client-facing order number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)
}
