package broadcast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

func startRelay(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialChannel(t *testing.T, url string) *SocketChannel {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ch, err := Dial(ctx, url)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	t.Cleanup(func() { ch.Close() })
	return ch
}

func receive(t *testing.T, ch *SocketChannel) models.Message {
	t.Helper()
	select {
	case msg, ok := <-ch.Messages():
		if !ok {
			t.Fatal("channel closed while waiting for a message")
		}
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a message")
	}
	return models.Message{}
}

func TestHubRelaysToAllIncludingSender(t *testing.T) {
	url := startRelay(t)
	waiter := dialChannel(t, url)
	kitchen := dialChannel(t, url)

	// Give the second connection time to register before broadcasting.
	time.Sleep(100 * time.Millisecond)

	order := models.Order{ID: "100", TableNumber: 3, Status: models.StatusPending,
		Items: []models.OrderItem{{Quantity: 1}}, Waiter: "John Doe"}
	if err := waiter.Publish(models.NewOrderMessage(order)); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	// The kitchen sees the order, and so does the publisher itself.
	for name, ch := range map[string]*SocketChannel{"kitchen": kitchen, "waiter": waiter} {
		msg := receive(t, ch)
		if msg.Type != models.MessageNewOrder {
			t.Errorf("%s received type %q, want NEW_ORDER", name, msg.Type)
		}
		if msg.Order == nil || msg.Order.ID != "100" {
			t.Errorf("%s received wrong order: %+v", name, msg.Order)
		}
	}
}

func TestHubRelaysStatusUpdates(t *testing.T) {
	url := startRelay(t)
	kitchen := dialChannel(t, url)
	waiter := dialChannel(t, url)
	time.Sleep(100 * time.Millisecond)

	if err := kitchen.Publish(models.UpdateStatusMessage("100", models.StatusPreparing)); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	msg := receive(t, waiter)
	if msg.Type != models.MessageUpdateStatus || msg.OrderID != "100" || msg.Status != models.StatusPreparing {
		t.Errorf("received %+v, want UPDATE_STATUS 100/preparing", msg)
	}
}

func TestChannelClosedPublish(t *testing.T) {
	url := startRelay(t)
	ch := dialChannel(t, url)
	ch.Close()

	// The read loop needs a moment to observe the close.
	time.Sleep(100 * time.Millisecond)
	if err := ch.Publish(models.Message{Type: "PING"}); err == nil {
		t.Error("publish on a closed channel should fail")
	}
	if ch.Connected() {
		t.Error("closed channel should not report connected")
	}
}
