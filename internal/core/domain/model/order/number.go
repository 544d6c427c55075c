package order

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"trattoria/internal/pkg/errs"
)

const (
	// numberPrefix is the client-facing prefix of every order number.
	numberPrefix = "MM"

	// numberSuffixLength is the number of random characters after the prefix.
	numberSuffixLength = 8

	// numberMaxLength bounds order numbers accepted from clients.
	numberMaxLength = 32
)

// numberAlphabet holds the characters used for generated order numbers.
const numberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Number is the client-facing order reference, distinct from the internal
// identifier. It is immutable once assigned and is the key used by
// notification subscriptions.
type Number string

// NewNumber validates an order number received from a client.
// The number must be non-empty, at most 32 characters, and contain no
// whitespace. Clients generate their own numbers, so no particular prefix is
// enforced on input.
func NewNumber(s string) (Number, error) {
	if s == "" {
		return "", errs.NewValueIsRequiredError("order number")
	}
	if len(s) > numberMaxLength {
		return "", errs.NewValueIsOutOfRangeError("order number length", len(s), 1, numberMaxLength)
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return "", errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q contains whitespace", s))
	}
	return Number(s), nil
}

// GenerateNumber produces a fresh order number of the form "MM" followed by
// eight random alphanumeric characters, e.g. "MM12345678". Used when a
// creation request carries no number of its own.
func GenerateNumber() Number {
	var sb strings.Builder
	sb.WriteString(numberPrefix)
	for range numberSuffixLength {
		sb.WriteByte(numberAlphabet[rand.IntN(len(numberAlphabet))]) //nolint:gosec // it's ok
	}
	return Number(sb.String())
}

// Validate checks that the number satisfies the same rules as NewNumber.
func (n Number) Validate() error {
	_, err := NewNumber(string(n))
	return err
}

// String returns the order number as stored and displayed.
func (n Number) String() string {
	return string(n)
}
