package queries

import (
	"errors"
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/guard"
)

var (
	ErrGetAllReservationsQueryIsNotConstructed = errors.New(
		"GetAllReservationsQuery must be created via NewGetAllReservationsQuery constructor",
	)
)

// GetAllReservationsQuery retrieves every reservation for the staff
// dashboard, newest first.
type GetAllReservationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllReservationsQuery creates a query to list all reservations.
// This is a parameterless query.
func NewGetAllReservationsQuery() GetAllReservationsQuery {
	return GetAllReservationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllReservationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllReservationsQueryIsNotConstructed)
}

// ReservationResponse represents one booking on the staff dashboard.
type ReservationResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Date      string
	TimeSlot  string
	Guests    int
	Notes     string
	Status    string
	CreatedAt time.Time
}
