package queries

import (
	"context"
	"database/sql"
	"errors"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler retrieves a single order with its line items
// from the database. Backs the public tracking page.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for order number lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError when no order carries the given number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_name,
			customer_email,
			customer_phone,
			street,
			city,
			postal_code,
			instructions,
			subtotal,
			delivery_fee,
			total,
			payment_method,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE number = ?
	`, query.Number().String()).Row()

	orderResp, err := scanOrderRow(row.Scan)
	if err != nil {
		// Only a missing row is a lookup miss. Anything else, like a
		// dropped connection, surfaces as a server error.
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"orderNumber", query.Number().String(), err,
			)
		}
		return OrderResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, orderResp.ID)
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.Items = items

	return orderResp, nil
}

// scanOrderRow maps one orders row onto the read model. The scan target
// order must match the column list used by the callers.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		orderResp                    OrderResponse
		id                           uuid.UUID
		subtotal, deliveryFee, total decimal.Decimal
	)

	err := scan(
		&id,
		&orderResp.Number,
		&orderResp.CustomerName,
		&orderResp.CustomerEmail,
		&orderResp.CustomerPhone,
		&orderResp.Street,
		&orderResp.City,
		&orderResp.PostalCode,
		&orderResp.Instructions,
		&subtotal,
		&deliveryFee,
		&total,
		&orderResp.PaymentMethod,
		&orderResp.Status,
		&orderResp.CreatedAt,
		&orderResp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	orderResp.ID = orderID
	orderResp.Subtotal = subtotal.StringFixed(2)
	orderResp.DeliveryFee = deliveryFee.StringFixed(2)
	orderResp.Total = total.StringFixed(2)

	return orderResp, nil
}

func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity,
			price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)

	for rows.Next() {
		var (
			item  OrderItemResponse
			id    uuid.UUID
			price decimal.Decimal
		)

		if err = rows.Scan(&id, &item.Name, &item.Quantity, &price); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		item.ID = itemID
		item.Price = price.StringFixed(2)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
