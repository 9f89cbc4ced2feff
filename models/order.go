package models

import (
	"strconv"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusServed, StatusCancelled:
		return true
	}
	return false
}

// ValidStatusTransition reports whether the kitchen flow allows moving an
// order from one status to another. Transitions only run forward; served and
// cancelled have no in-flow predecessor and are set administratively.
func ValidStatusTransition(from, to OrderStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusPreparing
	case StatusPreparing:
		return to == StatusReady
	}
	return false
}

type OrderItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

type Order struct {
	ID          string      `json:"id"`
	TableNumber int         `json:"tableNumber"`
	Items       []OrderItem `json:"items"`
	Status      OrderStatus `json:"status"`
	Timestamp   int64       `json:"timestamp"`
	Waiter      string      `json:"waiter"`
}

// NewOrderID returns a time-based order id. Uniqueness is the caller's
// concern; ids are not reconciled downstream.
func NewOrderID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
