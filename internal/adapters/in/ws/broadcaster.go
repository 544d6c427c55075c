package ws

import (
	"log/slog"

	"trattoria/internal/core/domain/model/order"
)

// Broadcaster pushes order events to everyone subscribed to the order's
// number. It implements ports.OrderEventPublisher for the command handlers.
//
// Delivery is fire and forget through a bounded per-connection outbox: a
// slow or broken connection only loses its own frames, it never blocks the
// HTTP request that triggered the event or the other subscribers.
type Broadcaster struct {
	registry *Registry
	logger   *slog.Logger
}

// NewBroadcaster creates a broadcaster over the given registry.
func NewBroadcaster(registry *Registry, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		registry: registry,
		logger:   logger.With("component", "ws_broadcaster"),
	}
}

// PublishCreated notifies subscribers of the order's number that it was placed.
// In practice clients usually subscribe after the confirmation response
// arrives, so this frame mostly serves speculative early subscribers.
func (b *Broadcaster) PublishCreated(aggregate *order.Order) {
	b.publish(TypeOrderCreated, aggregate)
}

// PublishStatusUpdated notifies subscribers that the order moved to a new
// lifecycle state.
func (b *Broadcaster) PublishStatusUpdated(aggregate *order.Order) {
	b.publish(TypeOrderStatusUpdated, aggregate)
}

func (b *Broadcaster) publish(messageType string, aggregate *order.Order) {
	frame := eventFrame{
		Type:  messageType,
		Order: RecordFromOrder(aggregate),
	}

	peers := b.registry.snapshot(aggregate.Number())
	for _, p := range peers {
		if err := p.send(frame); err != nil {
			b.logger.Warn("dropping frame for subscriber",
				"type", messageType,
				"order_number", aggregate.Number().String(),
				"error", err,
			)
		}
	}
}
