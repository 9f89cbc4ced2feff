package models

const (
	MessageNewOrder     = "NEW_ORDER"
	MessageUpdateStatus = "UPDATE_STATUS"
)

// Message is the wire envelope relayed between clients. Receivers ignore
// any type they do not recognize.
type Message struct {
	Type    string      `json:"type"`
	Order   *Order      `json:"order,omitempty"`
	OrderID string      `json:"orderId,omitempty"`
	Status  OrderStatus `json:"status,omitempty"`
}

func NewOrderMessage(order Order) Message {
	return Message{Type: MessageNewOrder, Order: &order}
}

func UpdateStatusMessage(orderID string, status OrderStatus) Message {
	return Message{Type: MessageUpdateStatus, OrderID: orderID, Status: status}
}
