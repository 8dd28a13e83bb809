package integration

import (
	"context"
	"testing"
	"time"

	"quickbite/internal/model"
	"quickbite/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	defer db.Cleanup(t)

	ctx := context.Background()
	db.SeedTestData(t, ctx)

	logger := zerolog.Nop()
	restaurants := store.NewRestaurantStore(db.Pool, logger)

	t.Run("ListByRatingDesc returns all restaurants ordered", func(t *testing.T) {
		list, err := restaurants.ListByRatingDesc(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)

		assert.Equal(t, "Spice Garden", list[0].Name)
		assert.Equal(t, "Pasta Express", list[1].Name)
		assert.Equal(t, "Green Bowl", list[2].Name)

		// Array column round-trips into the slice field.
		assert.Equal(t, []string{"North Indian", "Biryani"}, list[0].CuisineTypes)
		assert.Equal(t, 600, list[0].CostForTwo)
		assert.True(t, list[0].IsOpen)
		assert.False(t, list[1].IsOpen)
	})

	t.Run("GetByID returns the restaurant", func(t *testing.T) {
		r, err := restaurants.GetByID(ctx, "R002")
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, "Green Bowl", r.Name)
		assert.Equal(t, "45 mins", r.DeliveryTime)
	})

	t.Run("GetByID returns nil for unknown ID", func(t *testing.T) {
		r, err := restaurants.GetByID(ctx, "R999")
		require.NoError(t, err)
		assert.Nil(t, r)
	})
}

func TestMenuStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	defer db.Cleanup(t)

	ctx := context.Background()
	db.SeedTestData(t, ctx)

	logger := zerolog.Nop()
	menuStore := store.NewMenuStore(db.Pool, logger)

	t.Run("ListByRestaurant returns only that restaurant's items", func(t *testing.T) {
		items, err := menuStore.ListByRestaurant(ctx, "R001")
		require.NoError(t, err)
		require.Len(t, items, 3)

		for _, item := range items {
			assert.Equal(t, "R001", item.RestaurantID)
		}
	})

	t.Run("ListByRestaurant returns empty for restaurant without items", func(t *testing.T) {
		items, err := menuStore.ListByRestaurant(ctx, "R003")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestOrderStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	defer db.Cleanup(t)

	ctx := context.Background()
	db.SeedTestData(t, ctx)

	logger := zerolog.Nop()
	orders := store.NewOrderStore(db.Pool, logger)

	restaurantID := "R001"
	order := &model.Order{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		RestaurantID: &restaurantID,
		Items: []model.OrderLine{
			{ID: "M001", Name: "Butter Chicken", Price: 320, Quantity: 2},
			{ID: "M002", Name: "Garlic Naan", Price: 60, Quantity: 3},
		},
		TotalAmount:     904,
		DeliveryAddress: "42 Brigade Road, Bangalore",
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	require.NoError(t, orders.Insert(ctx, order))

	// Read the row back directly and verify the JSONB snapshot survived.
	var (
		gotUserID  uuid.UUID
		gotRestID  *string
		gotItems   []model.OrderLine
		gotTotal   int
		gotAddress string
		gotStatus  string
	)
	err := db.Pool.QueryRow(ctx,
		`SELECT user_id, restaurant_id, items, total_amount, delivery_address, status
		 FROM orders WHERE id = $1`, order.ID,
	).Scan(&gotUserID, &gotRestID, &gotItems, &gotTotal, &gotAddress, &gotStatus)
	require.NoError(t, err)

	assert.Equal(t, order.UserID, gotUserID)
	require.NotNil(t, gotRestID)
	assert.Equal(t, "R001", *gotRestID)
	assert.Equal(t, order.Items, gotItems)
	assert.Equal(t, 904, gotTotal)
	assert.Equal(t, "42 Brigade Road, Bangalore", gotAddress)
	assert.Equal(t, model.OrderStatusPending, gotStatus)
}
