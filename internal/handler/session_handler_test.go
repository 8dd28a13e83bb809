package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quickbite/internal/model"
	"quickbite/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenuItem(id string, price int) model.MenuItem {
	return model.MenuItem{ID: id, RestaurantID: "R001", Price: price}
}

func TestSessionHandler_View(t *testing.T) {
	h := NewSessionHandler(zerolog.Nop())

	sess := session.New("S001")
	sess.AddToCart(testMenuItem("M001", 100))
	sess.AddToCart(testMenuItem("M001", 100))

	r := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	w := httptest.NewRecorder()
	h.View(w, withSession(r, sess))

	require.Equal(t, http.StatusOK, w.Code)

	var view session.ViewState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, 2, view.TotalItems)
	assert.False(t, view.CartOpen)
}

func TestSessionHandler_Close(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantCartOpen   bool
		wantDetailKept bool
	}{
		{"Close cart only", `{"view":"cart"}`, false, true},
		{"Close detail only", `{"view":"detail"}`, true, false},
		{"Close everything", `{}`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSessionHandler(zerolog.Nop())

			sess := session.New("S001")
			sess.EnterDetail("R001")
			sess.OpenCart()

			r := httptest.NewRequest(http.MethodPost, "/api/session/close", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Close(w, withSession(r, sess))

			require.Equal(t, http.StatusOK, w.Code)

			view := sess.View()
			assert.Equal(t, tt.wantCartOpen, view.CartOpen)
			if tt.wantDetailKept {
				assert.Equal(t, "R001", view.DetailRestaurantID)
			} else {
				assert.Equal(t, "", view.DetailRestaurantID)
			}
		})
	}
}
