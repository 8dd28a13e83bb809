package checkout

import (
	"context"
	"strings"
	"time"

	"quickbite/internal/model"
	"quickbite/internal/session"
	"quickbite/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service places cash-on-delivery orders against the remote store.
type Service struct {
	orders       store.OrderStore
	confirmDelay time.Duration
	logger       zerolog.Logger
}

// NewService creates a checkout service. confirmDelay is how long the
// confirmed state is displayed before the session's cart clears.
func NewService(orders store.OrderStore, confirmDelay time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		orders:       orders,
		confirmDelay: confirmDelay,
		logger:       logger.With().Str("service", "checkout").Logger(),
	}
}

// PlaceOrder validates the delivery details, snapshots the session's
// cart into an order and submits it. Validation and submission failures
// leave the cart intact for retry. On success the session enters the
// order-confirmed state and, after the configured delay, the cart
// clears and the checkout view closes.
func (s *Service) PlaceOrder(ctx context.Context, sess *session.Session, address, phone string) (*model.Order, error) {
	if strings.TrimSpace(address) == "" || strings.TrimSpace(phone) == "" {
		s.logger.Warn().Msg("checkout blocked: missing delivery details")
		return nil, model.ErrMissingDeliveryDetails
	}

	items := sess.CartItems()
	if len(items) == 0 {
		s.logger.Warn().Msg("checkout blocked: empty cart")
		return nil, model.ErrEmptyCart
	}

	lines := make([]model.OrderLine, len(items))
	itemTotal := 0
	for i, item := range items {
		lines[i] = model.OrderLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
		itemTotal += item.Price * item.Quantity
	}

	restaurantID := items[0].RestaurantID
	// The quote derives from the captured snapshot so the persisted
	// total always agrees with the persisted lines, even if the cart
	// mutates concurrently.
	quote := NewQuote(itemTotal)

	order := &model.Order{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		RestaurantID:    &restaurantID,
		Items:           lines,
		TotalAmount:     quote.GrandTotal,
		DeliveryAddress: address,
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("order submission failed")
		return nil, model.ErrOrderSubmission
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("restaurant_id", restaurantID).
		Int("total_amount", order.TotalAmount).
		Msg("order placed")

	// Walk the overlay to the confirmed state only now that the order
	// is placed; a rejected or failed submission leaves the navigation
	// state untouched.
	sess.OpenCart()
	sess.OpenCheckout()
	sess.ConfirmOrder()
	time.AfterFunc(s.confirmDelay, sess.FinishOrder)

	return order, nil
}
