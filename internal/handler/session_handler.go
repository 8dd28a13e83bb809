package handler

import (
	"encoding/json"
	"net/http"

	"quickbite/internal/model"
	"quickbite/internal/session"

	"github.com/rs/zerolog"
)

// SessionHandler exposes the navigation state of the current session.
type SessionHandler struct {
	logger zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		logger: logger.With().Str("handler", "session").Logger(),
	}
}

// View handles GET /api/session requests, returning the navigation
// state snapshot (used for the header cart badge).
func (h *SessionHandler) View(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	writeJSON(w, http.StatusOK, sess.View())
}

// closeRequest selects which part of the shell to close.
type closeRequest struct {
	// View is "cart", "detail" or "all" (the default).
	View string `json:"view"`
}

// Close handles POST /api/session/close requests, dismissing the cart
// overlay, the detail view, or both.
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req closeRequest
	if r.Body != nil {
		// An empty body means close everything.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	sess := session.FromContext(r.Context())

	switch req.View {
	case "cart":
		sess.CloseCart()
	case "detail":
		sess.LeaveDetail()
	default:
		sess.CloseCart()
		sess.LeaveDetail()
	}

	writeJSON(w, http.StatusOK, sess.View())
}
