// Package ws provides the websocket adapter for live order tracking.
// Clients subscribe to an order number and receive push frames whenever that
// order is created or moves through its lifecycle.
package ws

import (
	"time"

	"trattoria/internal/core/domain/model/order"
)

// Message types exchanged on the tracking socket.
const (
	// TypeSubscribeOrder is sent by clients to register interest in an
	// order number.
	TypeSubscribeOrder = "subscribe_order"

	// TypeOrderCreated is pushed to subscribers when an order is placed.
	TypeOrderCreated = "order_created"

	// TypeOrderStatusUpdated is pushed to subscribers when an order
	// advances through its lifecycle.
	TypeOrderStatusUpdated = "order_status_updated"
)

// subscribeFrame is the single inbound frame shape. Anything that does not
// parse into it, or carries a different type, is dropped.
type subscribeFrame struct {
	Type        string `json:"type"`
	OrderNumber string `json:"orderNumber"`
}

// eventFrame is the outbound push envelope.
type eventFrame struct {
	Type  string      `json:"type"`
	Order OrderRecord `json:"order"`
}

// OrderItemRecord is the wire shape of one line item.
type OrderItemRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// OrderRecord is the wire shape of an order as pushed to subscribers.
// It mirrors what the REST lookup returns so clients can use one renderer
// for both.
type OrderRecord struct {
	ID            string            `json:"id"`
	Number        string            `json:"number"`
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail"`
	CustomerPhone string            `json:"customerPhone"`
	Street        string            `json:"street"`
	City          string            `json:"city"`
	PostalCode    string            `json:"postalCode"`
	Instructions  string            `json:"instructions,omitempty"`
	Subtotal      string            `json:"subtotal"`
	DeliveryFee   string            `json:"deliveryFee"`
	Total         string            `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	Status        string            `json:"status"`
	Items         []OrderItemRecord `json:"items"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// RecordFromOrder maps an order aggregate to its wire shape.
func RecordFromOrder(aggregate *order.Order) OrderRecord {
	items := make([]OrderItemRecord, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemRecord{
			ID:       item.ID().String(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price().String(),
		})
	}

	return OrderRecord{
		ID:            aggregate.ID().String(),
		Number:        aggregate.Number().String(),
		CustomerName:  aggregate.Customer().Name(),
		CustomerEmail: aggregate.Customer().Email(),
		CustomerPhone: aggregate.Customer().Phone(),
		Street:        aggregate.Address().Street(),
		City:          aggregate.Address().City(),
		PostalCode:    aggregate.Address().PostalCode(),
		Instructions:  aggregate.Address().Instructions(),
		Subtotal:      aggregate.Subtotal().String(),
		DeliveryFee:   aggregate.DeliveryFee().String(),
		Total:         aggregate.Total().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		Status:        aggregate.Status().String(),
		Items:         items,
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}
