package router

import (
	"net/http"
	"strings"

	"quickbite/internal/handler"
	"quickbite/internal/middleware"
	"quickbite/internal/session"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	restaurantHandler *handler.RestaurantHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	sessionHandler *handler.SessionHandler,
	sessions *session.Manager,
	allowedOrigins []string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no session required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Restaurant handler function
	restaurantRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Menu requests carry a restaurant ID segment
		if strings.HasSuffix(r.URL.Path, "/menu") {
			restaurantHandler.Menu(w, r)
			return
		}
		if r.URL.Path == "/api/restaurants" || r.URL.Path == "/api/restaurants/" {
			restaurantHandler.List(w, r)
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	}

	// Register restaurant routes (both with and without trailing slash)
	mux.HandleFunc("/api/restaurants", restaurantRouteHandler)
	mux.HandleFunc("/api/restaurants/", restaurantRouteHandler)

	// Cart handler function
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/cart" || r.URL.Path == "/api/cart/":
			switch r.Method {
			case http.MethodGet:
				cartHandler.Get(w, r)
			case http.MethodDelete:
				cartHandler.Clear(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
		case r.URL.Path == "/api/cart/items" || r.URL.Path == "/api/cart/items/":
			if r.Method == http.MethodPost {
				cartHandler.AddItem(w, r)
				return
			}
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		case strings.HasPrefix(r.URL.Path, "/api/cart/items/"):
			switch r.Method {
			case http.MethodPut:
				cartHandler.UpdateItem(w, r)
			case http.MethodDelete:
				cartHandler.RemoveItem(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	mux.HandleFunc("/api/checkout", checkoutHandler.Create)

	mux.HandleFunc("/api/session", sessionHandler.View)
	mux.HandleFunc("/api/session/close", sessionHandler.Close)

	// Browser storefront clients call from another origin and the session
	// cookie must ride along. Browsers reject a wildcard origin on
	// credentialed requests, so with no configured allowlist the request
	// origin is echoed back instead of "*".
	corsOptions := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}
	if len(allowedOrigins) > 0 {
		corsOptions.AllowedOrigins = allowedOrigins
	} else {
		corsOptions.AllowOriginFunc = func(origin string) bool { return true }
	}
	corsHandler := cors.New(corsOptions)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Session
	var h http.Handler = mux
	h = middleware.Session(sessions)(h)
	h = corsHandler.Handler(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
