package store

import (
	"context"

	"quickbite/internal/model"
)

// RestaurantStore defines read access to the restaurants collection.
type RestaurantStore interface {
	// ListByRatingDesc retrieves all restaurants ordered by rating descending.
	ListByRatingDesc(ctx context.Context) ([]model.Restaurant, error)

	// GetByID retrieves a single restaurant, or nil when absent.
	GetByID(ctx context.Context, id string) (*model.Restaurant, error)
}

// MenuStore defines read access to the menu_items collection.
type MenuStore interface {
	// ListByRestaurant retrieves all menu items belonging to a restaurant.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.MenuItem, error)
}

// OrderStore defines write access to the orders collection.
type OrderStore interface {
	// Insert persists a new order with its item snapshot.
	Insert(ctx context.Context, order *model.Order) error
}
