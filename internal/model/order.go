package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusPending is the status every order carries at creation.
// Orders are written once at checkout and never mutated locally afterwards.
const OrderStatusPending = "pending"

// OrderLine is the snapshot of a single cart entry taken at checkout.
type OrderLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order represents a placed order as persisted in the remote store.
// RestaurantID is taken from the first cart entry and is nil when the
// cart held no items.
type Order struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	UserID          uuid.UUID   `json:"user_id" db:"user_id"`
	RestaurantID    *string     `json:"restaurant_id" db:"restaurant_id"`
	Items           []OrderLine `json:"items" db:"items"`
	TotalAmount     int         `json:"total_amount" db:"total_amount"`
	DeliveryAddress string      `json:"delivery_address" db:"delivery_address"`
	Status          string      `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}

// CheckoutRequest is the payload for placing an order.
type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address"`
	Phone           string `json:"phone"`
}
