package commands

import (
	"errors"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/order"
	"trattoria/internal/pkg/errs"
	"trattoria/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemSpec describes one line item of a creation request before the aggregate
// is built. The price is the unit price snapshot supplied by the cart.
type ItemSpec struct {
	Name     string
	Quantity int
	Price    kernel.Money
}

// CreateOrderCommand represents a request to place a new order.
// It carries the validated checkout payload: who ordered, where to deliver,
// the money breakdown and the line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), number, customer,
//	    address, subtotal, fee, total, order.PaymentCard, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	number        order.Number
	customer      order.Customer
	address       order.Address
	subtotal      kernel.Money
	deliveryFee   kernel.Money
	total         kernel.Money
	paymentMethod order.PaymentMethod
	items         []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Field-level validation happens here; cross-field invariants (the money sum,
// item ownership) are enforced by the order aggregate in the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	number order.Number,
	customer order.Customer,
	address order.Address,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	total kernel.Money,
	paymentMethod order.PaymentMethod,
	items []ItemSpec,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setNumber(number),
		orderCommand.setCustomer(customer),
		orderCommand.setAddress(address),
		orderCommand.setAmounts(subtotal, deliveryFee, total),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the internal identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the client-facing order number.
func (c CreateOrderCommand) Number() order.Number {
	return c.number
}

// Customer returns the contact details from checkout.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Address returns the delivery destination.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// Subtotal returns the pre-fee amount.
func (c CreateOrderCommand) Subtotal() kernel.Money {
	return c.subtotal
}

// DeliveryFee returns the flat delivery fee.
func (c CreateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// Total returns the grand total.
func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

// PaymentMethod returns the payment method tag.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Items returns the line item specifications.
func (c CreateOrderCommand) Items() []ItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumber(number order.Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	c.number = number
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setAmounts(subtotal, deliveryFee, total kernel.Money) error {
	if err := errors.Join(subtotal.Validate(), deliveryFee.Validate(), total.Validate()); err != nil {
		return err
	}
	c.subtotal = subtotal
	c.deliveryFee = deliveryFee
	c.total = total
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	c.items = items
	return nil
}
