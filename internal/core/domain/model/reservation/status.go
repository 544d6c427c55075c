package reservation

import (
	"fmt"

	"trattoria/internal/pkg/errs"
)

// Status represents the state of a table reservation. Unlike order statuses,
// reservation statuses have no enforced ordering: staff move reservations
// freely between states (a cancelled booking can be reinstated by phone).
type Status string

const (
	// Pending is the initial status of a newly requested reservation.
	Pending Status = "pending"

	// Confirmed indicates staff accepted the reservation.
	Confirmed Status = "confirmed"

	// Cancelled indicates the reservation will not be honored.
	Cancelled Status = "cancelled"

	// Completed indicates the party was seated or the date has passed.
	Completed Status = "completed"
)

// StatusFromString parses a status received from an external source.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the known states.
func (s Status) Validate() error {
	switch s {
	case Pending, Confirmed, Cancelled, Completed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("reservation status",
			fmt.Errorf("%q is not a valid reservation status", string(s)))
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
