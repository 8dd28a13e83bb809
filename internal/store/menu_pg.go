package store

import (
	"context"
	"fmt"

	"quickbite/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuStore implements the MenuStore interface using PostgreSQL.
type menuStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuStore creates a new PostgreSQL-backed menu store.
func NewMenuStore(pool *pgxpool.Pool, logger zerolog.Logger) MenuStore {
	return &menuStore{
		pool:   pool,
		logger: logger.With().Str("store", "menu").Logger(),
	}
}

// ListByRestaurant retrieves all menu items belonging to a restaurant.
func (s *menuStore) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, name, description, price, image_url,
		       category, is_veg, is_bestseller, created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query, restaurantID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("restaurant_id", restaurantID).
			Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		err := rows.Scan(
			&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.Price,
			&m.ImageURL, &m.Category, &m.IsVeg, &m.IsBestseller, &m.CreatedAt,
		)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}
