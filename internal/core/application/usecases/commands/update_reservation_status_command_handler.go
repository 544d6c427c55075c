package commands

import (
	"context"

	"trattoria/internal/core/domain/model/reservation"
)

// UpdateReservationStatusCommandHandler handles staff decisions on bookings.
type UpdateReservationStatusCommandHandler struct {
	uowFactory ReservationUoWFactory
}

// NewUpdateReservationStatusCommandHandler creates a handler for reservation
// status changes.
func NewUpdateReservationStatusCommandHandler(
	uowFactory ReservationUoWFactory,
) UpdateReservationStatusCommandHandler {
	return UpdateReservationStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation status command.
// Returns errs.ObjectNotFoundError when the reservation does not exist.
func (h *UpdateReservationStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateReservationStatusCommand,
) (*reservation.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	reservationAggregate, err := reservationRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return nil, err
	}

	if err = reservationAggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = reservationRepo.Update(ctx, reservationAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return reservationAggregate, nil
}
