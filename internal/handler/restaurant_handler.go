package handler

import (
	"net/http"
	"strings"

	"quickbite/internal/catalog"
	"quickbite/internal/menu"
	"quickbite/internal/model"
	"quickbite/internal/session"
	"quickbite/internal/store"

	"github.com/rs/zerolog"
)

// RestaurantHandler handles catalogue browsing and menu requests.
type RestaurantHandler struct {
	catalog     *catalog.Service
	restaurants store.RestaurantStore
	menuStore   store.MenuStore
	logger      zerolog.Logger
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(
	catalogService *catalog.Service,
	restaurants store.RestaurantStore,
	menuStore store.MenuStore,
	logger zerolog.Logger,
) *RestaurantHandler {
	return &RestaurantHandler{
		catalog:     catalogService,
		restaurants: restaurants,
		menuStore:   menuStore,
		logger:      logger.With().Str("handler", "restaurant").Logger(),
	}
}

// restaurantListResponse is the payload for the browsing screen.
type restaurantListResponse struct {
	Restaurants []model.Restaurant `json:"restaurants"`
	Count       int                `json:"count"`
	Loading     bool               `json:"loading"`
}

// List handles GET /api/restaurants?q=&filter= requests.
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query().Get("q")
	filterID := r.URL.Query().Get("filter")
	if filterID == "" {
		filterID = catalog.FilterAll
	}

	restaurants := h.catalog.View(query, filterID)

	writeJSON(w, http.StatusOK, restaurantListResponse{
		Restaurants: restaurants,
		Count:       len(restaurants),
		Loading:     h.catalog.Loading(),
	})
}

// menuResponse is the payload for the restaurant detail screen.
type menuResponse struct {
	Restaurant *model.Restaurant  `json:"restaurant"`
	Categories []string           `json:"categories"`
	Items      []menu.DisplayItem `json:"items"`
	Loading    bool               `json:"loading"`
}

// Menu handles GET /api/restaurants/{id}/menu?category= requests.
// Selecting a restaurant's menu enters the detail view for the session
// and re-fetches its items.
func (h *RestaurantHandler) Menu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/restaurants/{id}/menu
	path := strings.TrimPrefix(r.URL.Path, "/api/restaurants/")
	restaurantID := strings.TrimSuffix(path, "/menu")
	if restaurantID == "" || restaurantID == path {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "restaurant ID is required", h.logger)
		return
	}

	restaurant, err := h.restaurants.GetByID(r.Context(), restaurantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to load restaurant", h.logger)
		return
	}
	if restaurant == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeRestaurantNotFound, "restaurant not found", h.logger)
		return
	}

	sess := session.FromContext(r.Context())
	sess.EnterDetail(restaurantID)
	sess.Menu.Load(r.Context(), h.menuStore, restaurantID, h.logger)

	items := sess.Menu.Items()
	category := r.URL.Query().Get("category")

	writeJSON(w, http.StatusOK, menuResponse{
		Restaurant: restaurant,
		Categories: menu.Categories(items),
		Items:      menu.WithQuantities(menu.FilterByCategory(items, category), sess),
		Loading:    sess.Menu.Loading(),
	})
}
