package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOrder(t *testing.T, number string) *order.Order {
	t.Helper()

	orderNumber, err := order.NewNumber(number)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Mario Rossi", "mario@example.com", "+1-555-0100")
	require.NoError(t, err)
	address, err := order.NewAddress("12 Via Roma", "Boston", "02108", "")
	require.NoError(t, err)

	price, err := kernel.NewMoneyFromString("44.04")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 1, price)
	require.NoError(t, err)

	fee, err := kernel.NewMoneyFromString("15.00")
	require.NoError(t, err)
	total, err := kernel.NewMoneyFromString("59.04")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), orderNumber, customer, address,
		price, fee, total, order.PaymentCard, []*order.Item{item},
	)
	require.NoError(t, err)
	return aggregate
}

func dialWS(t *testing.T, registry *Registry) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(NewHandler(registry, testLogger()))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, err := websocket.Dial(wsURL, "", srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sendSubscribe(t *testing.T, conn *websocket.Conn, orderNumber string) {
	t.Helper()
	err := websocket.Message.Send(conn,
		`{"type":"subscribe_order","orderNumber":"`+orderNumber+`"}`)
	require.NoError(t, err)
}

// waitForSubscribers blocks until the registry holds the expected number of
// subscriptions for the order number. Subscribe frames travel over the
// socket, so registration is asynchronous from the test's point of view.
func waitForSubscribers(t *testing.T, registry *Registry, number order.Number, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(registry.snapshot(number)) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("registry never reached %d subscribers for %s", want, number)
}

func receiveFrame(t *testing.T, conn *websocket.Conn) eventFrame {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var raw string
	require.NoError(t, websocket.Message.Receive(conn, &raw))

	var frame eventFrame
	require.NoError(t, json.Unmarshal([]byte(raw), &frame))
	return frame
}

func assertNoFrame(t *testing.T, conn *websocket.Conn) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(150*time.Millisecond)))

	var raw string
	err := websocket.Message.Receive(conn, &raw)
	require.Error(t, err, "expected no frame, got: %s", raw)
}

func TestStatusUpdateDeliveredToSubscriber(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, testLogger())

	conn := dialWS(t, registry)
	sendSubscribe(t, conn, "MM12345678")

	aggregate := testOrder(t, "MM12345678")
	waitForSubscribers(t, registry, aggregate.Number(), 1)

	require.NoError(t, aggregate.ChangeStatus(order.Preparing))
	broadcaster.PublishStatusUpdated(aggregate)

	frame := receiveFrame(t, conn)
	assert.Equal(t, TypeOrderStatusUpdated, frame.Type)
	assert.Equal(t, "MM12345678", frame.Order.Number)
	assert.Equal(t, "preparing", frame.Order.Status)
	assert.Equal(t, "59.04", frame.Order.Total)
	require.Len(t, frame.Order.Items, 1)
	assert.Equal(t, "Margherita", frame.Order.Items[0].Name)

	// Exactly once: no second frame follows.
	assertNoFrame(t, conn)
}

func TestDoubleSubscribeDeliversOnce(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, testLogger())

	conn := dialWS(t, registry)
	sendSubscribe(t, conn, "MM12345678")
	sendSubscribe(t, conn, "MM12345678")

	aggregate := testOrder(t, "MM12345678")
	waitForSubscribers(t, registry, aggregate.Number(), 1)

	require.NoError(t, aggregate.ChangeStatus(order.Preparing))
	broadcaster.PublishStatusUpdated(aggregate)

	frame := receiveFrame(t, conn)
	assert.Equal(t, TypeOrderStatusUpdated, frame.Type)
	assertNoFrame(t, conn)
}

func TestSubscriberToOtherNumberGetsNothing(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, testLogger())

	conn := dialWS(t, registry)
	sendSubscribe(t, conn, "MMDOESNT01")

	otherNumber, err := order.NewNumber("MMDOESNT01")
	require.NoError(t, err)
	waitForSubscribers(t, registry, otherNumber, 1)

	aggregate := testOrder(t, "MM12345678")
	broadcaster.PublishCreated(aggregate)

	assertNoFrame(t, conn)
}

func TestOrderCreatedDeliveredToEarlySubscriber(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, testLogger())

	conn := dialWS(t, registry)
	sendSubscribe(t, conn, "MM12345678")

	aggregate := testOrder(t, "MM12345678")
	waitForSubscribers(t, registry, aggregate.Number(), 1)

	broadcaster.PublishCreated(aggregate)

	frame := receiveFrame(t, conn)
	assert.Equal(t, TypeOrderCreated, frame.Type)
	assert.Equal(t, "pending", frame.Order.Status)
}

func TestMalformedFrameDoesNotCloseConnection(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, testLogger())

	conn := dialWS(t, registry)

	require.NoError(t, websocket.Message.Send(conn, "not json at all"))
	require.NoError(t, websocket.Message.Send(conn, `{"type":"something_else"}`))
	sendSubscribe(t, conn, "MM12345678")

	aggregate := testOrder(t, "MM12345678")
	waitForSubscribers(t, registry, aggregate.Number(), 1)

	broadcaster.PublishCreated(aggregate)

	frame := receiveFrame(t, conn)
	assert.Equal(t, TypeOrderCreated, frame.Type)
}

func TestDisconnectRemovesAllSubscriptions(t *testing.T) {
	registry := NewRegistry()

	conn := dialWS(t, registry)
	sendSubscribe(t, conn, "MM12345678")
	sendSubscribe(t, conn, "MMABCD1234")

	first, err := order.NewNumber("MM12345678")
	require.NoError(t, err)
	second, err := order.NewNumber("MMABCD1234")
	require.NoError(t, err)
	waitForSubscribers(t, registry, first, 1)
	waitForSubscribers(t, registry, second, 1)

	require.NoError(t, conn.Close())

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(registry.snapshot(first)) == 0 && len(registry.snapshot(second)) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("subscriptions survived disconnect")
}

func TestSlowSubscriberDoesNotStallOthers(t *testing.T) {
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry, testLogger())

	// The first connection subscribes and then never reads, so its TCP
	// buffers and outbox fill up while the test runs.
	slow := dialWS(t, registry)
	sendSubscribe(t, slow, "MM12345678")

	healthy := dialWS(t, registry)
	sendSubscribe(t, healthy, "MM12345678")

	aggregate := testOrder(t, "MM12345678")
	waitForSubscribers(t, registry, aggregate.Number(), 2)
	require.NoError(t, aggregate.ChangeStatus(order.Preparing))

	received := make(chan int, 1)
	go func() {
		count := 0
		for {
			if err := healthy.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
				break
			}
			var raw string
			if err := websocket.Message.Receive(healthy, &raw); err != nil {
				break
			}
			count++
		}
		received <- count
	}()

	const publishes = 20000
	publisherDone := make(chan struct{})
	go func() {
		for range publishes {
			broadcaster.PublishStatusUpdated(aggregate)
		}
		close(publisherDone)
	}()

	select {
	case <-publisherDone:
	case <-time.After(10 * time.Second):
		t.Fatal("publisher stalled behind a subscriber that stopped reading")
	}

	// The healthy connection keeps receiving even though its neighbor is
	// wedged. Frames beyond its outbox capacity may be dropped, so only a
	// lower bound is asserted.
	assert.Greater(t, <-received, 0)
}

func TestRegistryUnsubscribeAllIsTargeted(t *testing.T) {
	registry := NewRegistry()

	first := newPeer(nil)
	second := newPeer(nil)
	number, err := order.NewNumber("MM12345678")
	require.NoError(t, err)

	registry.subscribe(first, number)
	registry.subscribe(second, number)
	require.Len(t, registry.snapshot(number), 2)

	registry.unsubscribeAll(first)
	require.Len(t, registry.snapshot(number), 1)
	assert.Same(t, second, registry.snapshot(number)[0])

	registry.unsubscribeAll(second)
	assert.Empty(t, registry.snapshot(number))
}
