package session

import (
	"sync"
	"time"

	"quickbite/internal/cart"
	"quickbite/internal/menu"
	"quickbite/internal/model"
)

// Session is the server-side counterpart of one browser tab: it owns
// the cart, the menu of the currently selected restaurant and the
// navigation state of the storefront.
//
// The navigation state is two independent machines. Browsing toggles
// with Detail(restaurant), and separately the cart overlay runs
// closed -> open -> checkout -> confirmed -> closed. Detail and the
// cart overlays are independent toggles, not mutually exclusive.
type Session struct {
	ID   string
	Menu menu.State

	mu                 sync.Mutex
	cart               *cart.Cart
	detailRestaurantID string
	cartOpen           bool
	checkoutOpen       bool
	orderConfirmed     bool
	lastSeen           time.Time
}

// ViewState is a snapshot of the navigation state for API responses.
type ViewState struct {
	DetailRestaurantID string `json:"detail_restaurant_id,omitempty"`
	CartOpen           bool   `json:"cart_open"`
	CheckoutOpen       bool   `json:"checkout_open"`
	OrderConfirmed     bool   `json:"order_confirmed"`
	TotalItems         int    `json:"total_items"`
}

// New creates an empty session with the given identifier.
func New(id string) *Session {
	return &Session{
		ID:       id,
		cart:     cart.New(),
		lastSeen: time.Now(),
	}
}

// touch records activity for idle expiry.
func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}

// EnterDetail selects a restaurant for the detail view.
func (s *Session) EnterDetail(restaurantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailRestaurantID = restaurantID
}

// LeaveDetail returns to browsing and drops the cached menu.
func (s *Session) LeaveDetail() {
	s.mu.Lock()
	s.detailRestaurantID = ""
	s.mu.Unlock()
	s.Menu.Reset()
}

// OpenCart opens the cart overlay.
func (s *Session) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = true
}

// CloseCart closes the cart overlay along with any checkout state.
func (s *Session) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = false
	s.checkoutOpen = false
	s.orderConfirmed = false
}

// OpenCheckout moves from the open cart to the checkout view. It is a
// no-op when the cart overlay is not open.
func (s *Session) OpenCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cartOpen {
		s.checkoutOpen = true
	}
}

// ConfirmOrder marks the order as placed. It is a no-op outside the
// checkout view.
func (s *Session) ConfirmOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkoutOpen {
		s.orderConfirmed = true
	}
}

// FinishOrder ends the confirmed state: the cart empties and the
// overlays close. Called after the confirmation display delay.
func (s *Session) FinishOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.orderConfirmed {
		return
	}
	s.cart.Clear()
	s.cartOpen = false
	s.checkoutOpen = false
	s.orderConfirmed = false
}

// View returns a snapshot of the navigation state.
func (s *Session) View() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ViewState{
		DetailRestaurantID: s.detailRestaurantID,
		CartOpen:           s.cartOpen,
		CheckoutOpen:       s.checkoutOpen,
		OrderConfirmed:     s.orderConfirmed,
		TotalItems:         s.cart.TotalItems(),
	}
}

// AddToCart adds a menu item to the session's cart.
func (s *Session) AddToCart(item model.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item)
}

// UpdateCartQuantity sets the quantity of a cart entry; zero or less
// removes it.
func (s *Session) UpdateCartQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(id, quantity)
}

// RemoveFromCart removes a cart entry.
func (s *Session) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(id)
}

// ClearCart empties the cart.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// CartItems returns the cart entries in insertion order.
func (s *Session) CartItems() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// CartTotalItems returns the sum of quantities in the cart.
func (s *Session) CartTotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

// CartTotalAmount returns the cart subtotal.
func (s *Session) CartTotalAmount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalAmount()
}

// ItemQuantity returns the cart quantity for a menu item ID.
func (s *Session) ItemQuantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemQuantity(id)
}
