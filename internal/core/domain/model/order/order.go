package order

import (
	"errors"
	"fmt"
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")
)

// PaymentMethod tags how the customer intends to pay.
// Card details are collected by the checkout form but never charged by this
// system, so the tag is informational only.
type PaymentMethod string

const (
	// PaymentCard marks an order paid by card at checkout.
	PaymentCard PaymentMethod = "card"

	// PaymentCashOnDelivery marks an order paid in cash to the courier.
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// Validate checks that the payment method is one of the known tags.
func (p PaymentMethod) Validate() error {
	if p != PaymentCard && p != PaymentCashOnDelivery {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%q is not a valid payment method", string(p)))
	}
	return nil
}

// String returns the wire representation of the payment method.
func (p PaymentMethod) String() string {
	return string(p)
}

// PaymentMethodFromString parses a payment method tag from its wire form.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	paymentMethod := PaymentMethod(s)
	if err := paymentMethod.Validate(); err != nil {
		return "", err
	}
	return paymentMethod, nil
}

// Order represents a customer's delivery order. It is the aggregate root that
// owns its line items and manages the order lifecycle from creation to
// delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and order number
//   - The order number is immutable once assigned
//   - Must own at least one line item
//   - total always equals subtotal + deliveryFee
//   - Status transitions follow the lifecycle in Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the internal unique identifier for the order
	id kernel.UUID

	// number is the client-facing order reference, immutable once set
	number Number

	// customer holds the contact details given at checkout
	customer Customer

	// address is the delivery destination
	address Address

	// subtotal is the sum of item prices before the delivery fee
	subtotal kernel.Money

	// deliveryFee is the flat fee added to the subtotal
	deliveryFee kernel.Money

	// total is subtotal + deliveryFee, fixed at creation
	total kernel.Money

	// paymentMethod tags how the customer intends to pay
	paymentMethod PaymentMethod

	// status is the current lifecycle state
	status Status

	// items are the line items owned by this order
	items []*Item

	// createdAt is when the order was placed
	createdAt time.Time

	// updatedAt tracks the last status change
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a fresh order, ensuring all business invariants hold.
//
// Parameters:
//   - id: Internal identifier (must be a valid UUID)
//   - number: Client-facing order number (must be valid)
//   - customer: Contact details (must be constructed)
//   - address: Delivery destination (must be constructed)
//   - subtotal, deliveryFee, total: Monetary amounts; total must equal subtotal + deliveryFee
//   - paymentMethod: How the customer intends to pay
//   - items: Line items; at least one is required
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), number, customer, address,
//	    subtotal, fee, total, order.PaymentCard, items)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	number Number,
	customer Customer,
	address Address,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	total kernel.Money,
	paymentMethod PaymentMethod,
	items []*Item,
) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCustomer(customer),
		order.setAddress(address),
		order.setAmounts(subtotal, deliveryFee, total),
		order.setPaymentMethod(paymentMethod),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation-time checks that only apply to fresh orders. Field-level validity
// is still enforced so corrupted rows cannot produce invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	customer Customer,
	address Address,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	total kernel.Money,
	paymentMethod PaymentMethod,
	status Status,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCustomer(customer),
		order.setAddress(address),
		order.setAmounts(subtotal, deliveryFee, total),
		order.setPaymentMethod(paymentMethod),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the client-facing order number.
func (o *Order) Number() Number {
	return o.number
}

// Customer returns the contact details given at checkout.
func (o *Order) Customer() Customer {
	return o.customer
}

// Address returns the delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// Subtotal returns the sum of item prices before the delivery fee.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryFee returns the flat delivery fee.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Total returns subtotal + deliveryFee as fixed at creation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PaymentMethod returns the payment method tag.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the line items owned by this order.
func (o *Order) Items() []*Item {
	return o.items
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed status.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus advances the order to the target lifecycle state.
//
// This method enforces the transition rules of Status.Transition: the target
// must be exactly one step forward. On success the last-update timestamp is
// refreshed.
//
// Returns:
//   - nil on successful transition
//   - error if the transition is not allowed; the order is left unchanged
//
// Example:
//
//	if err := o.ChangeStatus(order.Preparing); err != nil {
//	    // Invalid jump, e.g. pending -> delivered
//	}
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setAmounts(subtotal, deliveryFee, total kernel.Money) error {
	if err := errors.Join(subtotal.Validate(), deliveryFee.Validate(), total.Validate()); err != nil {
		return err
	}

	sum, err := subtotal.Add(deliveryFee)
	if err != nil {
		return err
	}
	if !total.IsEqual(sum) {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s does not equal subtotal %s plus delivery fee %s",
				total, subtotal, deliveryFee))
	}

	o.subtotal = subtotal
	o.deliveryFee = deliveryFee
	o.total = total
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
