package commands

import (
	"context"
	"time"

	"trattoria/internal/core/domain/model/reservation"
)

// CompleteStaleReservationsCommandHandler completes pending reservations whose
// requested date has passed. The whole sweep runs in one transaction.
type CompleteStaleReservationsCommandHandler struct {
	uowFactory ReservationUoWFactory
}

// NewCompleteStaleReservationsCommandHandler creates a handler for the
// stale reservation sweep.
func NewCompleteStaleReservationsCommandHandler(
	uowFactory ReservationUoWFactory,
) CompleteStaleReservationsCommandHandler {
	return CompleteStaleReservationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
// Every pending reservation dated before today is moved to completed.
func (h *CompleteStaleReservationsCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteStaleReservationsCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	today := now.Format(reservation.DateLayout)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	staleReservations, err := reservationRepo.GetAllStalePending(ctx, today)
	if err != nil {
		return err
	}

	for _, staleReservation := range staleReservations {
		// The SQL filter is authoritative; the domain check leaves a row
		// untouched if it no longer qualifies.
		if !staleReservation.IsStale(now) {
			continue
		}

		if err = staleReservation.ChangeStatus(reservation.Completed); err != nil {
			return err
		}

		if err = reservationRepo.Update(ctx, staleReservation); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
