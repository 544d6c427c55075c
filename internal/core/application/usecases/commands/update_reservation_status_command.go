package commands

import (
	"errors"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/reservation"
	"trattoria/internal/pkg/guard"
)

var (
	ErrUpdateReservationStatusCommandIsNotConstructed = errors.New(
		"UpdateReservationStatusCommand must be created via NewUpdateReservationStatusCommand constructor",
	)
)

// UpdateReservationStatusCommand represents a staff decision on a booking:
// confirm it, cancel it or mark the visit completed.
type UpdateReservationStatusCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	status        reservation.Status

	guard guard.ConstructorGuard
}

// NewUpdateReservationStatusCommand creates a command to change a
// reservation's status.
func NewUpdateReservationStatusCommand(
	reservationID kernel.UUID,
	status reservation.Status,
) (UpdateReservationStatusCommand, error) {
	statusCommand := UpdateReservationStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setReservationID(reservationID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateReservationStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReservationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReservationStatusCommandIsNotConstructed)
}

// ReservationID returns the identifier of the reservation to update.
func (c UpdateReservationStatusCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// Status returns the requested target status.
func (c UpdateReservationStatusCommand) Status() reservation.Status {
	return c.status
}

func (c *UpdateReservationStatusCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}
	c.reservationID = reservationID
	return nil
}

func (c *UpdateReservationStatusCommand) setStatus(status reservation.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
