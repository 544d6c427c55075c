package commands

import (
	"errors"
	"strings"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/errs"
	"trattoria/internal/pkg/guard"
)

var (
	ErrCreateReservationCommandIsNotConstructed = errors.New(
		"CreateReservationCommand must be created via NewCreateReservationCommand constructor",
	)
)

// CreateReservationCommand represents a request to book a table.
type CreateReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	name          string
	email         string
	phone         string
	date          string
	timeSlot      string
	guests        int
	notes         string

	guard guard.ConstructorGuard
}

// NewCreateReservationCommand creates a command to book a table.
// Only presence is checked here; date format, email shape and the guest
// range are enforced by the reservation aggregate.
func NewCreateReservationCommand(
	reservationID kernel.UUID,
	name string,
	email string,
	phone string,
	date string,
	timeSlot string,
	guests int,
	notes string,
) (CreateReservationCommand, error) {
	reservationCommand := CreateReservationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reservationCommand.setReservationID(reservationID),
		reservationCommand.setContact(name, email, phone),
		reservationCommand.setSlot(date, timeSlot, guests),
	); err != nil {
		return CreateReservationCommand{}, err
	}
	reservationCommand.notes = notes

	return reservationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReservationCommand) Validate() error {
	return c.guard.Validate(ErrCreateReservationCommandIsNotConstructed)
}

// ReservationID returns the identifier assigned to the new reservation.
func (c CreateReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// Name returns the guest name.
func (c CreateReservationCommand) Name() string {
	return c.name
}

// Email returns the guest email.
func (c CreateReservationCommand) Email() string {
	return c.email
}

// Phone returns the guest phone number.
func (c CreateReservationCommand) Phone() string {
	return c.phone
}

// Date returns the requested date in YYYY-MM-DD form.
func (c CreateReservationCommand) Date() string {
	return c.date
}

// TimeSlot returns the requested seating time.
func (c CreateReservationCommand) TimeSlot() string {
	return c.timeSlot
}

// Guests returns the party size.
func (c CreateReservationCommand) Guests() int {
	return c.guests
}

// Notes returns the optional special requests.
func (c CreateReservationCommand) Notes() string {
	return c.notes
}

func (c *CreateReservationCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}
	c.reservationID = reservationID
	return nil
}

func (c *CreateReservationCommand) setContact(name, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.name = name
	c.email = email
	c.phone = phone
	return nil
}

func (c *CreateReservationCommand) setSlot(date, timeSlot string, guests int) error {
	if strings.TrimSpace(date) == "" {
		return errs.NewValueIsRequiredError("date")
	}
	if strings.TrimSpace(timeSlot) == "" {
		return errs.NewValueIsRequiredError("timeSlot")
	}
	if guests <= 0 {
		return errs.NewValueIsRequiredError("guests")
	}
	c.date = date
	c.timeSlot = timeSlot
	c.guests = guests
	return nil
}
