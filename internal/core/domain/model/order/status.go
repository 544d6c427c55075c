package order

import (
	"fmt"

	"trattoria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct kitchen-to-doorstep workflow.
//
// State transitions:
//
//	pending ──> preparing ──> out_for_delivery ──> delivered
//
// Each transition moves exactly one step forward; skipping a step or moving
// backwards is rejected. delivered is the terminal state.
type Status string

const (
	// Pending is the initial status assigned when an order is created.
	Pending Status = "pending"

	// Preparing indicates the kitchen has started working on the order.
	Preparing Status = "preparing"

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery Status = "out_for_delivery"

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered Status = "delivered"
)

// getValidStatuses returns the set of valid Status values in lifecycle order.
func getValidStatuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered}
}

// StatusFromString parses a status received from an external source
// (API payload, database column) into a Status value.
//
// Returns:
//   - the parsed Status if the string names a lifecycle state
//   - error if the string is not one of the four valid states
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the four lifecycle states.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	for _, valid := range getValidStatuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", string(s)))
}

// String returns the wire representation of the status.
// It implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// next returns the status one step forward in the lifecycle.
// The second return value is false for the terminal state.
func (s Status) next() (Status, bool) {
	switch s {
	case Pending:
		return Preparing, true
	case Preparing:
		return OutForDelivery, true
	case OutForDelivery:
		return Delivered, true
	default:
		return "", false
	}
}

// Transition validates and performs the move from the current status to target.
//
// Valid transitions advance exactly one step:
//   - pending -> preparing
//   - preparing -> out_for_delivery
//   - out_for_delivery -> delivered
//
// Invalid transitions (skips, reversals, repeats, moves out of delivered)
// return an error and leave the caller's state untouched.
//
// Example:
//
//	newStatus, err := currentStatus.Transition(order.Preparing)
//	if err != nil {
//	    // Handle invalid transition
//	}
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}

	forward, ok := s.next()
	if !ok || forward != target {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot transition from %s to %s", s, target))
	}

	return target, nil
}
