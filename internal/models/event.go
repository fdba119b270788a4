package models

import "time"

// OrderCreatedEvent is the message published to the kitchen queue after an
// order has been durably recorded.
type OrderCreatedEvent struct {
	OrderID    int64       `json:"order_id"`
	PickupDate string      `json:"pickup_date"`
	Items      []EventItem `json:"items"`
	TotalPrice int64       `json:"total_price"`
	Timestamp  time.Time   `json:"timestamp"`
}

// EventItem is one line of an order-created event.
type EventItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
