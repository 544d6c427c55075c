package order

import (
	"errors"
	"strings"

	"trattoria/internal/pkg/errs"
	"trattoria/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery destination of an order.
// Street, city and postal code are required; instructions are optional free
// text for the courier ("ring twice").
type Address struct { //nolint:recvcheck //using for validation
	street       string
	city         string
	postalCode   string
	instructions string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated delivery address.
func NewAddress(street, city, postalCode, instructions string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setPostalCode(postalCode),
	); err != nil {
		return Address{}, err
	}

	address.instructions = instructions
	return address, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Instructions returns the optional delivery instructions.
// An empty string means none were given.
func (a Address) Instructions() string {
	return a.instructions
}

func (a *Address) setStreet(street string) error {
	if strings.TrimSpace(street) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if strings.TrimSpace(postalCode) == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	a.postalCode = postalCode
	return nil
}
