package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quickbite/internal/catalog"
	"quickbite/internal/checkout"
	"quickbite/internal/handler"
	"quickbite/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T, allowedOrigins []string) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	sessions := session.NewManager(session.DefaultConfig(), logger)
	t.Cleanup(sessions.Close)

	return New(
		handler.NewRestaurantHandler(catalog.NewService(nil, logger), nil, nil, logger),
		handler.NewCartHandler(logger),
		handler.NewCheckoutHandler(checkout.NewService(nil, time.Second, logger), logger),
		handler.NewSessionHandler(logger),
		sessions,
		allowedOrigins,
		logger,
	)
}

func TestCORS_EchoesOriginForCredentialedRequests(t *testing.T) {
	h := newTestRouter(t, nil)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("Origin", "https://storefront.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	// The request origin must be echoed back, never "*": browsers reject
	// wildcard origins on responses that carry credentials, and the
	// session cookie would be dropped.
	assert.Equal(t, "https://storefront.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Preflight(t *testing.T) {
	h := newTestRouter(t, nil)

	r := httptest.NewRequest(http.MethodOptions, "/api/cart/items", nil)
	r.Header.Set("Origin", "https://storefront.example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, "https://storefront.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORS_AllowlistRestrictsOrigins(t *testing.T) {
	h := newTestRouter(t, []string{"https://app.example.com"})

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	r = httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
