// Package reservationrepo provides data transfer objects and mapping
// functions for reservation persistence.
package reservationrepo

import (
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/reservation"

	"github.com/google/uuid"
)

// ReservationDTO represents the database structure for persisting
// reservation aggregates. The date stays a plain YYYY-MM-DD string so the
// stale sweep can compare it lexicographically.
type ReservationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string
	Phone     string
	Date      string `gorm:"size:10;index"`
	TimeSlot  string `gorm:"column:time_slot"`
	Guests    int
	Notes     string
	Status    string `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for reservation entities.
func (ReservationDTO) TableName() string {
	return "reservations"
}

// fromDomain converts a reservation aggregate to its database representation.
func fromDomain(aggregate *reservation.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		Date:      aggregate.Date(),
		TimeSlot:  aggregate.TimeSlot(),
		Guests:    aggregate.Guests(),
		Notes:     aggregate.Notes(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a reservation aggregate.
func toDomain(dto ReservationDTO) (*reservation.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := reservation.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return reservation.RestoreReservation(
		id, dto.Name, dto.Email, dto.Phone,
		dto.Date, dto.TimeSlot, dto.Guests, dto.Notes,
		status, dto.CreatedAt,
	)
}
