package commands

import (
	"context"

	"trattoria/internal/core/domain/model/reservation"
)

// CreateReservationCommandHandler handles table booking requests.
// New reservations always start out pending and wait for staff confirmation.
type CreateReservationCommandHandler struct {
	uowFactory ReservationUoWFactory
}

// NewCreateReservationCommandHandler creates a handler for booking operations.
func NewCreateReservationCommandHandler(uowFactory ReservationUoWFactory) CreateReservationCommandHandler {
	return CreateReservationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking command.
func (h *CreateReservationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateReservationCommand,
) (*reservation.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newReservation, err := reservation.NewReservation(
		cmd.ReservationID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Date(),
		cmd.TimeSlot(),
		cmd.Guests(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ReservationRepository().Add(ctx, newReservation); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newReservation, nil
}
