package handler

import (
	"encoding/json"
	"net/http"

	"quickbite/internal/checkout"
	"quickbite/internal/model"
	"quickbite/internal/session"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles order placement.
type CheckoutHandler struct {
	service *checkout.Service
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service *checkout.Service, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// checkoutResponse is the payload for a placed order.
type checkoutResponse struct {
	Order *model.Order      `json:"order"`
	View  session.ViewState `json:"view"`
}

// Create handles POST /api/checkout requests.
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	sess := session.FromContext(r.Context())

	order, err := h.service.PlaceOrder(r.Context(), sess, req.DeliveryAddress, req.Phone)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{
		Order: order,
		View:  sess.View(),
	})
}
