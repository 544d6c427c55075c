package commands

import (
	"errors"

	"trattoria/internal/pkg/guard"
)

// CompleteStaleReservationsCommand moves pending reservations whose date
// has already passed to completed. The nightly job runs it so the staff
// dashboard does not fill up with bookings nobody can act on.
//
// Example:
//
//	cmd := NewCompleteStaleReservationsCommand()
//	handler := NewCompleteStaleReservationsCommandHandler(uowFactory)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("stale reservation sweep failed: %v", err)
//	}
type CompleteStaleReservationsCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrCompleteStaleReservationsCommandIsNotConstructed = errors.New(
		"CompleteStaleReservationsCommand must be created via NewCompleteStaleReservationsCommand constructor",
	)
)

// NewCompleteStaleReservationsCommand creates a command to sweep expired
// pending reservations. This is a parameterless batch command.
func NewCompleteStaleReservationsCommand() CompleteStaleReservationsCommand {
	command := CompleteStaleReservationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteStaleReservationsCommandIsNotConstructed if validation fails.
func (c *CompleteStaleReservationsCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStaleReservationsCommandIsNotConstructed)
}
