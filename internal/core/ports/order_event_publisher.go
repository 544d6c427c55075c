package ports

import (
	"trattoria/internal/core/domain/model/order"
)

// OrderEventPublisher fans order events out to subscribed notification
// channels. Publishing is fire-and-forget: implementations never return
// delivery failures to the caller, and a publish must not mutate any store.
type OrderEventPublisher interface {
	// PublishCreated announces a freshly created order to channels subscribed
	// to its order number.
	PublishCreated(aggregate *order.Order)

	// PublishStatusUpdated announces a status change to channels subscribed
	// to the order's number.
	PublishStatusUpdated(aggregate *order.Order)
}
