package model

import "time"

// Restaurant represents a restaurant in the catalogue.
// Records are immutable once fetched; the wire format mirrors the
// snake_case columns of the remote store.
type Restaurant struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	Rating       float64   `json:"rating" db:"rating"`
	DeliveryTime string    `json:"delivery_time" db:"delivery_time"`
	CuisineTypes []string  `json:"cuisine_types" db:"cuisine_types"`
	CostForTwo   int       `json:"cost_for_two" db:"cost_for_two"`
	IsOpen       bool      `json:"is_open" db:"is_open"`
	Address      string    `json:"address" db:"address"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
