package client

import (
	"context"
	"testing"
	"time"

	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

func TestSessionPublishDoesNotMutateLocally(t *testing.T) {
	session, ch := newTestSession()

	if err := session.PlaceOrder(pendingOrder("100")); err != nil {
		t.Fatalf("PlaceOrder() error: %v", err)
	}
	// Local state changes only when the echoed message is applied.
	if session.Store().Len() != 0 {
		t.Fatal("publish must not mutate the store before the echo arrives")
	}

	drain(session, ch)
	if session.Store().Len() != 1 {
		t.Fatal("echoed NEW_ORDER should land in the store")
	}
}

func TestSessionKitchenFlow(t *testing.T) {
	session, ch := newTestSession()
	session.Store().Apply(models.NewOrderMessage(pendingOrder("100")))

	if err := session.StartPreparing("100"); err != nil {
		t.Fatalf("StartPreparing() error: %v", err)
	}
	drain(session, ch)
	if got, _ := session.Store().Get("100"); got.Status != models.StatusPreparing {
		t.Fatalf("status = %q, want preparing", got.Status)
	}

	if err := session.MarkReady("100"); err != nil {
		t.Fatalf("MarkReady() error: %v", err)
	}
	drain(session, ch)
	if got, _ := session.Store().Get("100"); got.Status != models.StatusReady {
		t.Fatalf("status = %q, want ready", got.Status)
	}
}

func TestSessionKitchenGuards(t *testing.T) {
	session, ch := newTestSession()
	session.Store().Apply(models.NewOrderMessage(pendingOrder("100")))

	// Pending orders can only start preparing; ready is two steps away.
	if err := session.MarkReady("100"); err == nil {
		t.Error("MarkReady on a pending order should be rejected")
	}
	if err := session.StartPreparing("404"); err == nil {
		t.Error("StartPreparing on an unknown order should be rejected")
	}
	select {
	case msg := <-ch.Messages():
		t.Errorf("rejected action published %+v", msg)
	default:
	}

	drain(session, ch)
	if got, _ := session.Store().Get("100"); got.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", got.Status)
	}
}

func TestSessionUpdateStatusUnguarded(t *testing.T) {
	session, ch := newTestSession()
	session.Store().Apply(models.NewOrderMessage(pendingOrder("100")))

	// The administrative entry point trusts the caller; the raw message
	// layer applies whatever status was received.
	if err := session.UpdateStatus("100", models.StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}
	drain(session, ch)
	if got, _ := session.Store().Get("100"); got.Status != models.StatusCancelled {
		t.Errorf("status = %q, want cancelled", got.Status)
	}

	if err := session.UpdateStatus("100", "nonsense"); err == nil {
		t.Error("unknown status value should be rejected before publishing")
	}
}

func TestSessionRun(t *testing.T) {
	session, ch := newTestSession()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go session.Run(ctx)

	ch.Inject(models.NewOrderMessage(pendingOrder("100")))

	deadline := time.After(2 * time.Second)
	for session.Store().Len() == 0 {
		select {
		case <-deadline:
			t.Fatal("injected order never reached the store")
		case <-time.After(10 * time.Millisecond):
		}
	}
	if got, ok := session.Store().Get("100"); !ok || got.Status != models.StatusPending {
		t.Fatalf("unexpected store contents: %+v", got)
	}
}
