package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"quickbite/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRestaurantStore is a mock implementation of store.RestaurantStore.
type MockRestaurantStore struct {
	mock.Mock
}

func (m *MockRestaurantStore) ListByRatingDesc(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockRestaurantStore) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func TestService_RefreshSuccess(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	restaurants := []model.Restaurant{
		{ID: "R001", Name: "Spice Garden", Rating: 4.5},
		{ID: "R002", Name: "Green Bowl", Rating: 3.8},
	}

	mockStore := new(MockRestaurantStore)
	mockStore.On("ListByRatingDesc", ctx).Return(restaurants, nil)

	svc := NewService(mockStore, logger)
	svc.Refresh(ctx)

	assert.Equal(t, restaurants, svc.Restaurants())
	assert.False(t, svc.Loading())
	mockStore.AssertExpectations(t)
}

func TestService_RefreshFailureLeavesListEmpty(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockStore := new(MockRestaurantStore)
	mockStore.On("ListByRatingDesc", ctx).Return(nil, errors.New("connection refused"))

	svc := NewService(mockStore, logger)
	svc.Refresh(ctx)

	assert.Empty(t, svc.Restaurants())
	assert.False(t, svc.Loading())
}

func TestService_LoadingFlagDuringFetch(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	mockStore := new(MockRestaurantStore)
	mockStore.On("ListByRatingDesc", ctx).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]model.Restaurant{{ID: "R001"}}, nil)

	svc := NewService(mockStore, logger)

	done := make(chan struct{})
	go func() {
		svc.Refresh(ctx)
		close(done)
	}()

	<-started
	assert.True(t, svc.Loading())

	close(release)
	<-done
	assert.False(t, svc.Loading())
	assert.Len(t, svc.Restaurants(), 1)
}

func TestService_StaleFetchIsDiscarded(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	stale := []model.Restaurant{{ID: "R-STALE"}}
	fresh := []model.Restaurant{{ID: "R-FRESH"}}

	firstStarted := make(chan struct{})
	firstRelease := make(chan struct{})

	mockStore := new(MockRestaurantStore)
	mockStore.On("ListByRatingDesc", ctx).
		Run(func(args mock.Arguments) {
			close(firstStarted)
			<-firstRelease
		}).
		Return(stale, nil).
		Once()
	mockStore.On("ListByRatingDesc", ctx).Return(fresh, nil).Once()

	svc := NewService(mockStore, logger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc.Refresh(ctx)
	}()

	<-firstStarted

	// The second refresh issues a newer generation and completes first.
	svc.Refresh(ctx)
	assert.Equal(t, fresh, svc.Restaurants())

	// The first fetch now resolves late; its result must be discarded.
	close(firstRelease)
	wg.Wait()

	assert.Equal(t, fresh, svc.Restaurants())
	assert.False(t, svc.Loading())
}

func TestService_ViewAppliesFilters(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	restaurants := []model.Restaurant{
		{ID: "R001", Name: "Spice Garden", Rating: 4.5, DeliveryTime: "25 mins"},
		{ID: "R002", Name: "Green Bowl", Rating: 3.8, DeliveryTime: "45 mins"},
	}

	mockStore := new(MockRestaurantStore)
	mockStore.On("ListByRatingDesc", mock.Anything).Return(restaurants, nil)

	svc := NewService(mockStore, logger)
	svc.Refresh(ctx)

	got := svc.View("", FilterRating)
	assert.Len(t, got, 1)
	assert.Equal(t, "R001", got[0].ID)
}

func TestService_RefreshReplacesPreviousList(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockStore := new(MockRestaurantStore)
	mockStore.On("ListByRatingDesc", ctx).
		Return([]model.Restaurant{{ID: "R001"}}, nil).
		Once()
	mockStore.On("ListByRatingDesc", ctx).
		Return(nil, errors.New("timeout")).
		Once()

	svc := NewService(mockStore, logger)
	svc.Refresh(ctx)
	assert.Len(t, svc.Restaurants(), 1)

	// A failed refresh degrades to an empty list, not the old one.
	svc.Refresh(ctx)
	assert.Empty(t, svc.Restaurants())

	mockStore.AssertExpectations(t)
}
