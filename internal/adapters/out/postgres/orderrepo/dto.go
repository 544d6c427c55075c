// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The client-facing number is unique so the tracking lookup can use it
// directly.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number        string          `gorm:"uniqueIndex;size:32"`
	CustomerName  string          `gorm:"column:customer_name"`
	CustomerEmail string          `gorm:"column:customer_email"`
	CustomerPhone string          `gorm:"column:customer_phone"`
	Street        string
	City          string
	PostalCode    string `gorm:"column:postal_code"`
	Instructions  string
	Subtotal      decimal.Decimal `gorm:"type:numeric(10,2)"`
	DeliveryFee   decimal.Decimal `gorm:"column:delivery_fee;type:numeric(10,2)"`
	Total         decimal.Decimal `gorm:"type:numeric(10,2)"`
	PaymentMethod string          `gorm:"column:payment_method"`
	Status        string          `gorm:"index"`
	Items         []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item of an order.
type OrderItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;index"`
	Name     string
	Quantity int
	Price    decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number().String(),
		CustomerName:  aggregate.Customer().Name(),
		CustomerEmail: aggregate.Customer().Email(),
		CustomerPhone: aggregate.Customer().Phone(),
		Street:        aggregate.Address().Street(),
		City:          aggregate.Address().City(),
		PostalCode:    aggregate.Address().PostalCode(),
		Instructions:  aggregate.Address().Instructions(),
		Subtotal:      aggregate.Subtotal().Decimal(),
		DeliveryFee:   aggregate.DeliveryFee().Decimal(),
		Total:         aggregate.Total().Decimal(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		Status:        aggregate.Status().String(),
		Items:         items,
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NewNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Street, dto.City, dto.PostalCode, dto.Instructions)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoneyFromDecimal(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoneyFromDecimal(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoneyFromDecimal(dto.Total)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, priceErr := kernel.NewMoneyFromDecimal(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(itemID, itemDTO.Name, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, number, customer, address,
		subtotal, deliveryFee, total,
		paymentMethod, status, items,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
