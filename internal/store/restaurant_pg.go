package store

import (
	"context"
	"fmt"

	"quickbite/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// restaurantStore implements the RestaurantStore interface using PostgreSQL.
type restaurantStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRestaurantStore creates a new PostgreSQL-backed restaurant store.
func NewRestaurantStore(pool *pgxpool.Pool, logger zerolog.Logger) RestaurantStore {
	return &restaurantStore{
		pool:   pool,
		logger: logger.With().Str("store", "restaurant").Logger(),
	}
}

// ListByRatingDesc retrieves all restaurants ordered by rating descending.
func (s *restaurantStore) ListByRatingDesc(ctx context.Context) ([]model.Restaurant, error) {
	query := `
		SELECT id, name, description, image_url, rating, delivery_time,
		       cuisine_types, cost_for_two, is_open, address, created_at
		FROM restaurants
		ORDER BY rating DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query restaurants")
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []model.Restaurant
	for rows.Next() {
		var r model.Restaurant
		err := rows.Scan(
			&r.ID, &r.Name, &r.Description, &r.ImageURL, &r.Rating,
			&r.DeliveryTime, &r.CuisineTypes, &r.CostForTwo, &r.IsOpen,
			&r.Address, &r.CreatedAt,
		)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to scan restaurant row")
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, r)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating restaurant rows")
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}

	return restaurants, nil
}

// GetByID retrieves a single restaurant by its ID.
func (s *restaurantStore) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	query := `
		SELECT id, name, description, image_url, rating, delivery_time,
		       cuisine_types, cost_for_two, is_open, address, created_at
		FROM restaurants
		WHERE id = $1
	`

	var r model.Restaurant
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&r.ID, &r.Name, &r.Description, &r.ImageURL, &r.Rating,
		&r.DeliveryTime, &r.CuisineTypes, &r.CostForTwo, &r.IsOpen,
		&r.Address, &r.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			s.logger.Debug().Str("restaurant_id", id).Msg("restaurant not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Str("restaurant_id", id).Msg("failed to query restaurant")
		return nil, fmt.Errorf("failed to query restaurant: %w", err)
	}

	return &r, nil
}
