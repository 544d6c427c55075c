package queries

import (
	"errors"
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/order"
	"trattoria/internal/pkg/guard"
)

var (
	ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
		"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
	)
)

// GetOrderByNumberQuery retrieves a single order by its client-facing number.
// This is the lookup customers use on the tracking page, so it works with the
// number printed on the confirmation rather than the internal identifier.
//
// Example:
//
//	number, _ := order.NewNumber("MM12345678")
//	query, _ := NewGetOrderByNumberQuery(number)
//	handler := NewGetOrderByNumberQueryHandler(db)
//
//	found, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("order lookup failed: %w", err)
//	}
//	fmt.Printf("order %s is %s\n", found.Number, found.Status)
type GetOrderByNumberQuery struct {
	number order.Number

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query to look up an order by number.
func NewGetOrderByNumberQuery(number order.Number) (GetOrderByNumberQuery, error) {
	if err := number.Validate(); err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return GetOrderByNumberQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// Number returns the order number to look up.
func (q GetOrderByNumberQuery) Number() order.Number {
	return q.number
}

// OrderItemResponse represents one line item of a returned order.
type OrderItemResponse struct {
	ID       kernel.UUID
	Name     string
	Quantity int
	Price    string
}

// OrderResponse represents the read model of an order as shown on the
// tracking page and the staff dashboard. Money fields are formatted with
// two decimal places.
type OrderResponse struct {
	ID            kernel.UUID
	Number        string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Street        string
	City          string
	PostalCode    string
	Instructions  string
	Subtotal      string
	DeliveryFee   string
	Total         string
	PaymentMethod string
	Status        string
	Items         []OrderItemResponse
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
