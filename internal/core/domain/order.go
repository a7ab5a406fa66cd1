package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// validTransitions defines the allowed status transitions. Completed and
// cancelled are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderCompleted, OrderCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is one product line within an order.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Order is created by a consumer checkout on the backend and mutated only via
// farmer-initiated status transitions.
type Order struct {
	ID          string      `json:"_id"`
	Consumer    User        `json:"consumer"`
	Farmer      User        `json:"farmer"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}
