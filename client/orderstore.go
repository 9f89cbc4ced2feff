package client

import (
	"sync"

	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

// OrderStore is the session-local cache of every order seen on the channel.
// It has no write path of its own: Apply is the single mutation point, fed by
// received messages, so all connected clients converge on the same contents
// regardless of who published what.
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Apply folds one received message into the store. NEW_ORDER appends unless
// the id is already present, so redelivery is harmless. UPDATE_STATUS patches
// the status of a held order and silently drops unknown ids. Unrecognized
// message types are ignored.
func (s *OrderStore) Apply(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch msg.Type {
	case models.MessageNewOrder:
		if msg.Order == nil {
			return
		}
		for _, o := range s.orders {
			if o.ID == msg.Order.ID {
				return
			}
		}
		s.orders = append(s.orders, *msg.Order)
	case models.MessageUpdateStatus:
		for i := range s.orders {
			if s.orders[i].ID == msg.OrderID {
				s.orders[i].Status = msg.Status
				return
			}
		}
	}
}

// Orders returns a copy of the full order sequence in arrival order.
func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// ByStatus filters the sequence for one kitchen column. Orders live in a
// single list; the columns are views, not separate storage.
func (s *OrderStore) ByStatus(status models.OrderStatus) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
