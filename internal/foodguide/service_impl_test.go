package foodguide

import (
	"context"
	"testing"

	"github.com/salesavor/salesavor/internal/foodguide/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByCountryNormalizesCase(t *testing.T) {
	svc := NewService()

	for _, input := range []string{"canada", "CANADA", " Canada "} {
		guide, err := svc.GetByCountry(context.Background(), input)
		require.NoError(t, err, input)
		assert.Equal(t, "CANADA", guide.Country)
		assert.NotEmpty(t, guide.Guidelines)
	}
}

func TestGetByCountryAcceptsUSAliases(t *testing.T) {
	svc := NewService()

	usa, err := svc.GetByCountry(context.Background(), "usa")
	require.NoError(t, err)
	us, err := svc.GetByCountry(context.Background(), "US")
	require.NoError(t, err)

	assert.Equal(t, us.Title, usa.Title)
	assert.Equal(t, "US", us.Country)
}

func TestGetByCountryRejectsUnknown(t *testing.T) {
	svc := NewService()

	_, err := svc.GetByCountry(context.Background(), "france")
	assert.ErrorIs(t, err, domain.ErrInvalidCountry)

	_, err = svc.GetByCountry(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidCountry)
}
