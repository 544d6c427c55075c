package ports

import (
	"context"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/reservation"
)

// ReservationRepository defines the persistence contract for reservation aggregates.
type ReservationRepository interface {
	// Add persists a new reservation.
	Add(ctx context.Context, aggregate *reservation.Reservation) error

	// Update persists changes to an existing reservation.
	Update(ctx context.Context, aggregate *reservation.Reservation) error

	// Get retrieves a reservation by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error)

	// GetAllStalePending retrieves pending reservations whose requested date
	// is strictly before the given day. Used by the cleanup job.
	GetAllStalePending(ctx context.Context, before string) ([]*reservation.Reservation, error)
}
