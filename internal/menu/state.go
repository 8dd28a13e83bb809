package menu

import (
	"context"
	"sync"

	"quickbite/internal/model"
	"quickbite/internal/store"

	"github.com/rs/zerolog"
)

// State holds the menu of the currently selected restaurant for one
// session. Load re-runs whenever the selection changes; like the
// catalogue, a failed fetch logs and leaves the item list empty, and a
// generation token discards fetches that resolve after a newer
// selection was made.
type State struct {
	mu           sync.Mutex
	restaurantID string
	items        []model.MenuItem
	loading      bool
	generation   uint64
}

// Load fetches the menu for the given restaurant via the store.
func (s *State) Load(ctx context.Context, menuStore store.MenuStore, restaurantID string, logger zerolog.Logger) {
	s.mu.Lock()
	s.restaurantID = restaurantID
	s.loading = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	items, err := menuStore.ListByRestaurant(ctx, restaurantID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		logger.Debug().
			Str("restaurant_id", restaurantID).
			Uint64("generation", gen).
			Msg("discarding stale menu fetch")
		return
	}

	s.loading = false
	if err != nil {
		logger.Error().Err(err).
			Str("restaurant_id", restaurantID).
			Msg("failed to fetch menu items")
		s.items = nil
		return
	}

	s.items = items
}

// Items returns the cached menu items for the current selection.
func (s *State) Items() []model.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

// RestaurantID returns the currently selected restaurant.
func (s *State) RestaurantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurantID
}

// Loading reports whether a menu fetch is in flight.
func (s *State) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Reset clears the selection and cached items.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurantID = ""
	s.items = nil
	s.loading = false
	s.generation++
}
