package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"trattoria/internal/core/domain/model/order"

	"golang.org/x/net/websocket"
)

// Handler accepts tracking socket connections and feeds subscribe frames
// into the registry.
type Handler struct {
	registry *Registry
	logger   *slog.Logger
}

// NewHandler creates the websocket endpoint over the given registry.
func NewHandler(registry *Registry, logger *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger.With("component", "ws_handler"),
	}
}

// ServeHTTP upgrades the request and runs the read loop until the client
// disconnects.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(h.handleConn).ServeHTTP(w, r)
}

func (h *Handler) handleConn(conn *websocket.Conn) {
	p := newPeer(conn)
	go p.writeLoop()

	defer func() {
		h.registry.unsubscribeAll(p)
		p.close()
	}()

	for {
		var raw string
		if err := websocket.Message.Receive(conn, &raw); err != nil {
			// Client went away; the deferred unsubscribe cleans up.
			return
		}

		var frame subscribeFrame
		if err := json.Unmarshal([]byte(raw), &frame); err != nil {
			// Malformed frames are dropped without closing the
			// connection, matching what the tracking page expects.
			h.logger.Debug("dropping malformed frame", "error", err)
			continue
		}

		if frame.Type != TypeSubscribeOrder {
			continue
		}

		number, err := order.NewNumber(frame.OrderNumber)
		if err != nil {
			h.logger.Debug("dropping subscribe with bad order number", "error", err)
			continue
		}

		h.registry.subscribe(p, number)
	}
}
