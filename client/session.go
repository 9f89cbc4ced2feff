package client

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/PrinceMakavana/restaurant-order-management-system/broadcast"
	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

// Session ties one client's order store to an injected broadcast channel.
// PlaceOrder and UpdateStatus only publish; the store changes when the relay
// echoes the message back, the same path every other client takes. Mutating
// locally as well would double-apply the change.
type Session struct {
	channel broadcast.Channel
	store   *OrderStore
	log     *logrus.Entry
}

func NewSession(channel broadcast.Channel) *Session {
	return &Session{
		channel: channel,
		store:   NewOrderStore(),
		log:     logrus.WithField("component", "session"),
	}
}

// Run drains the channel into the order store until the channel closes or
// the context is cancelled.
func (s *Session) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.channel.Messages():
			if !ok {
				s.log.Warn("channel closed, order updates stopped")
				return
			}
			s.store.Apply(msg)
		}
	}
}

func (s *Session) Store() *OrderStore {
	return s.store
}

// PlaceOrder publishes a new order to every connected client.
func (s *Session) PlaceOrder(order models.Order) error {
	return s.channel.Publish(models.NewOrderMessage(order))
}

// UpdateStatus publishes a status change without checking the current state.
// The kitchen actions below are the guarded entry points; this one is for
// administrative transitions such as served or cancelled.
func (s *Session) UpdateStatus(orderID string, status models.OrderStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("unknown order status %q", status)
	}
	return s.channel.Publish(models.UpdateStatusMessage(orderID, status))
}

// StartPreparing moves a pending order into preparation.
func (s *Session) StartPreparing(orderID string) error {
	return s.transition(orderID, models.StatusPreparing)
}

// MarkReady moves a preparing order to ready.
func (s *Session) MarkReady(orderID string) error {
	return s.transition(orderID, models.StatusReady)
}

func (s *Session) transition(orderID string, to models.OrderStatus) error {
	order, ok := s.store.Get(orderID)
	if !ok {
		return fmt.Errorf("order %s not found", orderID)
	}
	if !models.ValidStatusTransition(order.Status, to) {
		return fmt.Errorf("order %s is %s, cannot move to %s", orderID, order.Status, to)
	}
	return s.channel.Publish(models.UpdateStatusMessage(orderID, to))
}
