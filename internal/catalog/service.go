package catalog

import (
	"context"
	"sync"

	"quickbite/internal/model"
	"quickbite/internal/store"

	"github.com/rs/zerolog"
)

// Service holds the restaurant catalogue for the lifetime of the
// process. The list is fetched from the store ordered by rating
// descending; a fetch failure is logged and leaves the list empty
// rather than surfacing an error to the caller.
//
// Rapid re-triggering of Refresh can complete out of order, so each
// fetch carries a generation token and a completion whose generation
// is no longer current is discarded.
type Service struct {
	store  store.RestaurantStore
	logger zerolog.Logger

	mu          sync.Mutex
	restaurants []model.Restaurant
	loading     bool
	generation  uint64
}

// NewService creates a new catalogue service.
func NewService(restaurantStore store.RestaurantStore, logger zerolog.Logger) *Service {
	return &Service{
		store:  restaurantStore,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// Refresh fetches the full restaurant list. The loading flag is set for
// the duration of the fetch and cleared on completion regardless of
// outcome. On failure the previously cached list is replaced with an
// empty one, matching the storefront's empty-list-not-error behaviour.
func (s *Service) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	restaurants, err := s.store.ListByRatingDesc(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug().
			Uint64("generation", gen).
			Uint64("current", s.generation).
			Msg("discarding stale catalogue fetch")
		return
	}

	s.loading = false
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch restaurants")
		s.restaurants = nil
		return
	}

	s.restaurants = restaurants
	s.logger.Debug().Int("count", len(restaurants)).Msg("catalogue refreshed")
}

// Restaurants returns the cached restaurant list.
func (s *Service) Restaurants() []model.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()

	restaurants := make([]model.Restaurant, len(s.restaurants))
	copy(restaurants, s.restaurants)
	return restaurants
}

// View returns the filtered restaurant list for the given search query
// and filter identifier, derived from the cached set.
func (s *Service) View(query, filterID string) []model.Restaurant {
	return ApplyFilters(s.Restaurants(), query, filterID)
}

// Loading reports whether a fetch is in flight.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
