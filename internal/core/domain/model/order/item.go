package order

import (
	"errors"
	"fmt"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a line item belonging to exactly one Order. The price is a snapshot
// taken at order time, so later menu price changes never alter historical
// orders. Items live and die with their owning order.
type Item struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// name is the menu item name as it appeared when ordered
	name string

	// quantity is how many units were ordered (always positive)
	quantity int

	// price is the unit price snapshot at time of order
	price kernel.Money

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a validated line item.
//
// Parameters:
//   - id: Unique identifier for the item (must be a valid UUID)
//   - name: Menu item name (must be non-empty)
//   - quantity: Units ordered (must be positive)
//   - price: Unit price snapshot (must be a constructed Money)
//
// Returns:
//   - *Item: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewItem(id kernel.UUID, name string, quantity int, price kernel.Money) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the menu item name snapshot.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshot.
func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}
