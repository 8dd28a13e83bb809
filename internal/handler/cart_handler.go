package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"quickbite/internal/checkout"
	"quickbite/internal/model"
	"quickbite/internal/session"

	"github.com/rs/zerolog"
)

// CartHandler handles cart mutations and the cart overlay view.
type CartHandler struct {
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is the payload for the cart overlay.
type cartResponse struct {
	Items      []model.CartItem  `json:"items"`
	TotalItems int               `json:"total_items"`
	Quote      checkout.Quote    `json:"quote"`
	View       session.ViewState `json:"view"`
}

// Get handles GET /api/cart requests. Reading the cart opens the cart
// overlay for the session.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	sess.OpenCart()

	writeJSON(w, http.StatusOK, h.view(sess))
}

// AddItem handles POST /api/cart/items requests. Adding an item already
// in the cart increments its quantity.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item model.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if item.ID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "item ID is required", h.logger)
		return
	}

	sess := session.FromContext(r.Context())
	sess.AddToCart(item)

	writeJSON(w, http.StatusOK, h.view(sess))
}

// updateQuantityRequest is the payload for quantity changes.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PUT /api/cart/items/{id} requests. A quantity of
// zero removes the entry; unknown IDs are a no-op.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
	if itemID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "item ID is required", h.logger)
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	sess := session.FromContext(r.Context())
	sess.UpdateCartQuantity(itemID, req.Quantity)

	writeJSON(w, http.StatusOK, h.view(sess))
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
	if itemID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "item ID is required", h.logger)
		return
	}

	sess := session.FromContext(r.Context())
	sess.RemoveFromCart(itemID)

	writeJSON(w, http.StatusOK, h.view(sess))
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	sess.ClearCart()

	writeJSON(w, http.StatusOK, h.view(sess))
}

func (h *CartHandler) view(sess *session.Session) cartResponse {
	return cartResponse{
		Items:      sess.CartItems(),
		TotalItems: sess.CartTotalItems(),
		Quote:      checkout.NewQuote(sess.CartTotalAmount()),
		View:       sess.View(),
	}
}
