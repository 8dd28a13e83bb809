package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quickbite/internal/checkout"
	"quickbite/internal/model"
	"quickbite/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderStore is a mock implementation of store.OrderStore.
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Insert(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func filledSession() *session.Session {
	sess := session.New("S001")
	sess.AddToCart(model.MenuItem{ID: "M001", RestaurantID: "R001", Name: "Butter Chicken", Price: 100})
	sess.AddToCart(model.MenuItem{ID: "M001", RestaurantID: "R001", Name: "Butter Chicken", Price: 100})
	sess.AddToCart(model.MenuItem{ID: "M002", RestaurantID: "R001", Name: "Garlic Naan", Price: 50})
	return sess
}

func TestCheckoutHandler_Create(t *testing.T) {
	logger := zerolog.Nop()
	sess := filledSession()

	mockStore := new(MockOrderStore)
	mockStore.On("Insert", mock.Anything, mock.Anything).Return(nil)

	h := NewCheckoutHandler(checkout.NewService(mockStore, time.Hour, logger), logger)

	body := `{"delivery_address":"42 Brigade Road, Bangalore","phone":"9876543210"}`
	r := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, withSession(r, sess))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Order *model.Order      `json:"order"`
		View  session.ViewState `json:"view"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	require.NotNil(t, resp.Order)
	assert.Equal(t, 308, resp.Order.TotalAmount)
	assert.Equal(t, model.OrderStatusPending, resp.Order.Status)
	assert.True(t, resp.View.OrderConfirmed)

	mockStore.AssertExpectations(t)
}

func TestCheckoutHandler_ValidationFailure(t *testing.T) {
	logger := zerolog.Nop()
	sess := filledSession()

	mockStore := new(MockOrderStore)
	h := NewCheckoutHandler(checkout.NewService(mockStore, time.Hour, logger), logger)

	body := `{"delivery_address":"","phone":"9876543210"}`
	r := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, withSession(r, sess))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeMissingDeliveryDetails, resp.Error)

	// Cart remains non-empty and the overlays stay closed after the
	// blocked submission.
	assert.Equal(t, 3, sess.CartTotalItems())
	view := sess.View()
	assert.False(t, view.CartOpen)
	assert.False(t, view.CheckoutOpen)
	assert.False(t, view.OrderConfirmed)
	mockStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCheckoutHandler_SubmissionFailure(t *testing.T) {
	logger := zerolog.Nop()
	sess := filledSession()

	mockStore := new(MockOrderStore)
	mockStore.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	h := NewCheckoutHandler(checkout.NewService(mockStore, time.Hour, logger), logger)

	body := `{"delivery_address":"42 Brigade Road","phone":"9876543210"}`
	r := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, withSession(r, sess))

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeOrderSubmissionFailed, resp.Error)

	// Cart preserved for retry.
	assert.Equal(t, 3, sess.CartTotalItems())
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	logger := zerolog.Nop()

	h := NewCheckoutHandler(checkout.NewService(new(MockOrderStore), time.Hour, logger), logger)

	body := `{"delivery_address":"42 Brigade Road","phone":"9876543210"}`
	r := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, withSession(r, session.New("S001")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutHandler_InvalidBody(t *testing.T) {
	logger := zerolog.Nop()
	h := NewCheckoutHandler(checkout.NewService(new(MockOrderStore), time.Hour, logger), logger)

	r := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"delivery`))
	w := httptest.NewRecorder()
	h.Create(w, withSession(r, session.New("S001")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutHandler_MethodNotAllowed(t *testing.T) {
	logger := zerolog.Nop()
	h := NewCheckoutHandler(checkout.NewService(new(MockOrderStore), time.Hour, logger), logger)

	r := httptest.NewRequest(http.MethodGet, "/api/checkout", nil)
	w := httptest.NewRecorder()
	h.Create(w, withSession(r, session.New("S001")))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
