package ws

import (
	"encoding/json"
	"errors"
	"sync"

	"trattoria/internal/core/domain/model/order"

	"golang.org/x/net/websocket"
)

// outboxSize bounds how many undelivered frames a connection may queue
// before further frames are dropped for it.
const outboxSize = 32

var (
	errPeerClosed     = errors.New("subscriber connection is closed")
	errOutboxOverflow = errors.New("subscriber outbox is full, frame dropped")
)

// peer wraps one websocket connection with a buffered outbox. A single
// writer goroutine owns the socket, so a subscriber whose TCP buffers are
// full can never block a broadcast.
type peer struct {
	conn      *websocket.Conn
	outbox    chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newPeer(conn *websocket.Conn) *peer {
	return &peer{
		conn:   conn,
		outbox: make(chan []byte, outboxSize),
		done:   make(chan struct{}),
	}
}

// send marshals the frame and queues it for delivery. It never blocks:
// a subscriber that is not draining its outbox loses the frame.
func (p *peer) send(frame any) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	select {
	case <-p.done:
		return errPeerClosed
	default:
	}

	select {
	case p.outbox <- data:
		return nil
	default:
		return errOutboxOverflow
	}
}

// writeLoop drains the outbox onto the socket until the peer is closed or
// a write fails. It is the only goroutine writing to the connection.
func (p *peer) writeLoop() {
	for {
		select {
		case data := <-p.outbox:
			if err := websocket.Message.Send(p.conn, string(data)); err != nil {
				p.close()
				return
			}
		case <-p.done:
			return
		}
	}
}

// close shuts the connection down once. Closing the socket also unblocks
// the handler's read loop, which removes the peer from the registry.
func (p *peer) close() {
	p.closeOnce.Do(func() {
		close(p.done)
		if p.conn != nil {
			_ = p.conn.Close()
		}
	})
}

// Registry tracks which connections are subscribed to which order numbers.
// A connection may hold subscriptions to several numbers at once; subscribing
// twice to the same number is a no-op. All access is guarded by one mutex,
// with a reverse index so tearing down a closed connection does not scan
// every order number.
type Registry struct {
	mu          sync.Mutex
	subscribers map[order.Number]map[*peer]struct{}
	byPeer      map[*peer]map[order.Number]struct{}
}

// NewRegistry creates an empty subscription registry.
func NewRegistry() *Registry {
	return &Registry{
		subscribers: make(map[order.Number]map[*peer]struct{}),
		byPeer:      make(map[*peer]map[order.Number]struct{}),
	}
}

// subscribe registers the peer for the given order number. Idempotent.
func (r *Registry) subscribe(p *peer, number order.Number) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subscribers[number] == nil {
		r.subscribers[number] = make(map[*peer]struct{})
	}
	r.subscribers[number][p] = struct{}{}

	if r.byPeer[p] == nil {
		r.byPeer[p] = make(map[order.Number]struct{})
	}
	r.byPeer[p][number] = struct{}{}
}

// unsubscribeAll removes the peer from every order number it is registered
// for. Empty per-number sets are deleted so the registry does not grow with
// dead order numbers.
func (r *Registry) unsubscribeAll(p *peer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for number := range r.byPeer[p] {
		delete(r.subscribers[number], p)
		if len(r.subscribers[number]) == 0 {
			delete(r.subscribers, number)
		}
	}
	delete(r.byPeer, p)
}

// snapshot returns the peers currently subscribed to the given order number.
// The slice is taken under the lock so delivery can happen outside of it.
func (r *Registry) snapshot(number order.Number) []*peer {
	r.mu.Lock()
	defer r.mu.Unlock()

	peers := make([]*peer, 0, len(r.subscribers[number]))
	for p := range r.subscribers[number] {
		peers = append(peers, p)
	}
	return peers
}
