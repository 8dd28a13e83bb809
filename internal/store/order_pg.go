package store

import (
	"context"
	"fmt"

	"quickbite/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderStore implements the OrderStore interface using PostgreSQL.
type orderStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderStore creates a new PostgreSQL-backed order store.
func NewOrderStore(pool *pgxpool.Pool, logger zerolog.Logger) OrderStore {
	return &orderStore{
		pool:   pool,
		logger: logger.With().Str("store", "order").Logger(),
	}
}

// Insert persists a new order. The item snapshot is stored as a JSONB
// array on the order row itself.
func (s *orderStore) Insert(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (id, user_id, restaurant_id, items, total_amount,
		                    delivery_address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		order.ID,
		order.UserID,
		order.RestaurantID,
		order.Items,
		order.TotalAmount,
		order.DeliveryAddress,
		order.Status,
		order.CreatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	s.logger.Debug().
		Str("order_id", order.ID.String()).
		Int("total_amount", order.TotalAmount).
		Msg("order inserted successfully")

	return nil
}
