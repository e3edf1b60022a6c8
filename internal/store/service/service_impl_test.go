package service

import (
	"context"
	"math"
	"testing"

	"github.com/salesavor/salesavor/internal/store/domain"
	"github.com/salesavor/salesavor/internal/store/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService() domain.Service {
	return New(Params{
		Log:       zap.NewNop(),
		Directory: repository.Provide(),
	})
}

func TestFindNearbyReturnsAllDowntownStores(t *testing.T) {
	svc := newService()

	stores, err := svc.FindNearby(context.Background(), domain.FindNearbyRequest{
		Location: domain.UserLocation{Latitude: 43.6532, Longitude: -79.3832},
	})
	require.NoError(t, err)
	require.Len(t, stores, 8)

	assert.Equal(t, "Loblaws Superstore", stores[0].Name)
	assert.Equal(t, 0.0, stores[0].DistanceKm)

	for i := 1; i < len(stores); i++ {
		assert.LessOrEqual(t, stores[i-1].DistanceKm, stores[i].DistanceKm)
	}
	for _, store := range stores {
		assert.LessOrEqual(t, store.DistanceKm, 25.0)
		assert.NotEmpty(t, store.ID)
		assert.NotEmpty(t, store.Address)
	}
}

func TestFindNearbySmallRadiusFilters(t *testing.T) {
	svc := newService()

	stores, err := svc.FindNearby(context.Background(), domain.FindNearbyRequest{
		Location: domain.UserLocation{Latitude: 43.6532, Longitude: -79.3832},
		RadiusKm: 0.3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, stores)
	assert.Less(t, len(stores), 8)
	for _, store := range stores {
		assert.LessOrEqual(t, store.DistanceKm, 0.3)
	}
}

func TestFindNearbyFarLocationIsEmpty(t *testing.T) {
	svc := newService()

	// Vancouver is well outside the 25 km default radius.
	stores, err := svc.FindNearby(context.Background(), domain.FindNearbyRequest{
		Location: domain.UserLocation{Latitude: 49.2827, Longitude: -123.1207},
	})
	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestFindNearbyRejectsNonFiniteCoordinates(t *testing.T) {
	svc := newService()

	_, err := svc.FindNearby(context.Background(), domain.FindNearbyRequest{
		Location: domain.UserLocation{Latitude: math.NaN(), Longitude: -79.3832},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)

	_, err = svc.FindNearby(context.Background(), domain.FindNearbyRequest{
		Location: domain.UserLocation{Latitude: 43.6532, Longitude: math.Inf(1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)
}

func TestDirectoryCopyIsIsolated(t *testing.T) {
	dir := repository.Provide()

	first := dir.All()
	first[0].Name = "mutated"

	second := dir.All()
	assert.Equal(t, "Loblaws Superstore", second[0].Name)
}

func TestDirectoryPriceMatchPolicies(t *testing.T) {
	dir := repository.Provide()

	byName := map[string]domain.StoreLocation{}
	for _, store := range dir.All() {
		byName[store.Name] = store
	}

	assert.True(t, byName["Food Basics"].PriceMatchPolicy.HasPriceMatch)
	assert.Equal(t, 10.0, byName["Food Basics"].PriceMatchPolicy.AdditionalDiscount)

	assert.True(t, byName["Walmart Supercentre"].PriceMatchPolicy.HasPriceMatch)
	assert.Equal(t, 0.0, byName["Walmart Supercentre"].PriceMatchPolicy.AdditionalDiscount)

	assert.False(t, byName["Loblaws Superstore"].PriceMatchPolicy.HasPriceMatch)
	assert.False(t, byName["Costco Wholesale"].PriceMatchPolicy.HasPriceMatch)
}
