// Package reservation implements the table reservation aggregate.
// A reservation is a plain persisted booking request with contact details,
// party size and a requested date and time slot; staff manage its status.
package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/errs"
)

const (
	// MinGuests is the smallest accepted party size.
	MinGuests = 1
	// MaxGuests is the largest party a single reservation may book.
	MaxGuests = 20
)

// DateLayout is the accepted format of reservation dates.
const DateLayout = "2006-01-02"

// ErrReservationIsNotConstructed is returned when a Reservation was not
// created through NewReservation or RestoreReservation.
var ErrReservationIsNotConstructed = errors.New(
	"Reservation must be created via NewReservation or RestoreReservation constructors")

// Reservation represents a table booking request.
type Reservation struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	date    string
	timeSlot string
	guests  int
	notes   string
	status  Status
	createdAt time.Time

	isConstructed bool
}

// NewReservation creates a pending reservation with validation.
// The date must be in YYYY-MM-DD form; guests must be between MinGuests and
// MaxGuests. Notes are optional free text.
func NewReservation(id kernel.UUID, name, email, phone, date, timeSlot string, guests int, notes string) (*Reservation, error) {
	r := &Reservation{
		status:        Pending,
		notes:         notes,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
		r.setPhone(phone),
		r.setDate(date),
		r.setTimeSlot(timeSlot),
		r.setGuests(guests),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReservation reconstructs a reservation from persistence.
func RestoreReservation(id kernel.UUID, name, email, phone, date, timeSlot string, guests int, notes string, status Status, createdAt time.Time) (*Reservation, error) {
	r, err := NewReservation(id, name, email, phone, date, timeSlot, guests, notes)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	r.status = status
	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the Reservation was created through a factory method.
func (r *Reservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// ID returns the reservation's unique identifier.
func (r *Reservation) ID() kernel.UUID { return r.id }

// Name returns the name the booking was made under.
func (r *Reservation) Name() string { return r.name }

// Email returns the contact email.
func (r *Reservation) Email() string { return r.email }

// Phone returns the contact phone number.
func (r *Reservation) Phone() string { return r.phone }

// Date returns the requested date in YYYY-MM-DD form.
func (r *Reservation) Date() string { return r.date }

// TimeSlot returns the requested time slot as given by the customer.
func (r *Reservation) TimeSlot() string { return r.timeSlot }

// Guests returns the party size.
func (r *Reservation) Guests() int { return r.guests }

// Notes returns the optional request notes.
func (r *Reservation) Notes() string { return r.notes }

// Status returns the current reservation status.
func (r *Reservation) Status() Status { return r.status }

// CreatedAt returns when the reservation was requested.
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

// ChangeStatus moves the reservation to the target status.
// Any valid status is accepted; staff corrections have no ordering rules.
func (r *Reservation) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	r.status = target
	return nil
}

// IsStale reports whether the reservation is still pending although its
// requested date is before the given day. Used by the cleanup job.
func (r *Reservation) IsStale(today time.Time) bool {
	if r.status != Pending {
		return false
	}
	date, err := time.Parse(DateLayout, r.date)
	if err != nil {
		return false
	}
	return date.Before(today.Truncate(24 * time.Hour))
}

func (r *Reservation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reservation) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Reservation) setEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") || !strings.Contains(email[at+1:], ".") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", email))
	}
	r.email = email
	return nil
}

func (r *Reservation) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	r.phone = phone
	return nil
}

func (r *Reservation) setDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	r.date = date
	return nil
}

func (r *Reservation) setTimeSlot(timeSlot string) error {
	if strings.TrimSpace(timeSlot) == "" {
		return errs.NewValueIsRequiredError("time")
	}
	r.timeSlot = timeSlot
	return nil
}

func (r *Reservation) setGuests(guests int) error {
	if guests < MinGuests || guests > MaxGuests {
		return errs.NewValueIsOutOfRangeError("guests", guests, MinGuests, MaxGuests)
	}
	r.guests = guests
	return nil
}
