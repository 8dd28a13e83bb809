package model

import "time"

// MenuItem represents a dish on a restaurant's menu.
// Price is in whole currency units.
type MenuItem struct {
	ID           string    `json:"id" db:"id"`
	RestaurantID string    `json:"restaurant_id" db:"restaurant_id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	Price        int       `json:"price" db:"price"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	Category     string    `json:"category" db:"category"`
	IsVeg        bool      `json:"is_veg" db:"is_veg"`
	IsBestseller bool      `json:"is_bestseller" db:"is_bestseller"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
