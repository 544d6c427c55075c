package queries

import (
	"context"

	"trattoria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllReservationsQueryHandler retrieves all reservations from the database.
type GetAllReservationsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllReservationsQueryHandler creates a handler for reservation listing.
// Requires a GORM database connection for query execution.
func NewGetAllReservationsQueryHandler(db *gorm.DB) GetAllReservationsQueryHandler {
	return GetAllReservationsQueryHandler{db: db}
}

// Handle executes the listing query, newest bookings first.
func (h GetAllReservationsQueryHandler) Handle(
	ctx context.Context,
	query GetAllReservationsQuery,
) ([]ReservationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			date,
			time_slot,
			guests,
			notes,
			status,
			created_at
		FROM reservations
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]ReservationResponse, 0)

	for rows.Next() {
		var (
			reservationResp ReservationResponse
			id              uuid.UUID
		)

		err = rows.Scan(
			&id,
			&reservationResp.Name,
			&reservationResp.Email,
			&reservationResp.Phone,
			&reservationResp.Date,
			&reservationResp.TimeSlot,
			&reservationResp.Guests,
			&reservationResp.Notes,
			&reservationResp.Status,
			&reservationResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		reservationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		reservationResp.ID = reservationID
		reservations = append(reservations, reservationResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
