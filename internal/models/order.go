package models

import "time"

// PickupDateLayout is the wire format for pickup dates (calendar date,
// no time component).
const PickupDateLayout = "2006-01-02"

// Order represents a persisted customer order. Orders are immutable once
// created.
type Order struct {
	ID              int64     `json:"id"`
	MainItemID      int64     `json:"mainItemId"`
	MainQuantity    int       `json:"mainQuantity"`
	DessertItemID   *int64    `json:"dessertItemId"`
	DessertQuantity int       `json:"dessertQuantity"`
	PickupDate      string    `json:"pickupDate"`
	TotalPrice      int64     `json:"totalPrice"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateOrderRequest represents the inbound order payload. Required fields
// are pointers so that absence can be told apart from a zero value.
// TotalPrice is informational only: the server recomputes it from catalog
// prices and never trusts the client value.
type CreateOrderRequest struct {
	MainItemID      *int64 `json:"mainItemId"`
	MainQuantity    *int   `json:"mainQuantity"`
	DessertItemID   *int64 `json:"dessertItemId"`
	DessertQuantity *int   `json:"dessertQuantity"`
	PickupDate      string `json:"pickupDate"`
	TotalPrice      *int64 `json:"totalPrice"`
}
