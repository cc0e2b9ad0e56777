package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/travel-planner/internal/persistence"
)

func TestAttractionRepository_CreateAndGetWithHours(t *testing.T) {
	pool := newTestPool(t)
	repo := NewAttractionRepository(pool)

	hours := []string{
		"Monday: 9:00 AM – 5:00 PM",
		"Tuesday: Closed",
		"Wednesday: Open 24 hours",
	}
	seedAttraction(t, pool, "attr-1", hours)

	got, err := repo.GetAttraction(context.Background(), "attr-1")
	require.NoError(t, err)
	assert.Equal(t, "Attraction attr-1", got.Name)
	assert.Equal(t, hours, got.OpeningHours)
}

func TestAttractionRepository_GetNotFound(t *testing.T) {
	pool := newTestPool(t)
	repo := NewAttractionRepository(pool)

	_, err := repo.GetAttraction(context.Background(), "missing")
	assert.ErrorIs(t, err, persistence.ErrNotFound)
}

func TestAttractionRepository_RatingOutOfRange(t *testing.T) {
	pool := newTestPool(t)
	repo := NewAttractionRepository(pool)

	err := repo.CreateAttraction(context.Background(), persistence.Attraction{
		ID:          "attr-bad",
		Name:        "Too Good",
		Destination: "Tokyo",
		Category:    "Culture",
		Rating:      5.5,
	})
	assert.ErrorIs(t, err, persistence.ErrConstraintViolation)

	// The hours insert runs in the same transaction, so nothing sticks.
	_, err = repo.GetAttraction(context.Background(), "attr-bad")
	assert.ErrorIs(t, err, persistence.ErrNotFound)
}

func TestAttractionRepository_ListFiltersAndOrder(t *testing.T) {
	pool := newTestPool(t)
	repo := NewAttractionRepository(pool)

	create := func(id, destination, category string, rating float64) {
		require.NoError(t, repo.CreateAttraction(context.Background(), persistence.Attraction{
			ID:          id,
			Name:        "Attraction " + id,
			Destination: destination,
			Category:    category,
			Rating:      rating,
			ReviewCount: 10,
		}))
	}
	create("attr-1", "Tokyo", "Culture", 4.2)
	create("attr-2", "Tokyo", "Food", 4.8)
	create("attr-3", "Kyoto", "Culture", 4.9)

	t.Run("no filter orders by rating descending", func(t *testing.T) {
		attractions, err := repo.ListAttractions(context.Background(), persistence.AttractionFilter{})
		require.NoError(t, err)
		require.Len(t, attractions, 3)
		assert.Equal(t, "attr-3", attractions[0].ID)
		assert.Equal(t, "attr-2", attractions[1].ID)
		assert.Equal(t, "attr-1", attractions[2].ID)
	})

	t.Run("destination filter", func(t *testing.T) {
		attractions, err := repo.ListAttractions(context.Background(), persistence.AttractionFilter{Destination: "Tokyo"})
		require.NoError(t, err)
		require.Len(t, attractions, 2)
		assert.Equal(t, "attr-2", attractions[0].ID)
	})

	t.Run("destination and category filter", func(t *testing.T) {
		attractions, err := repo.ListAttractions(context.Background(), persistence.AttractionFilter{
			Destination: "Tokyo",
			Category:    "Culture",
		})
		require.NoError(t, err)
		require.Len(t, attractions, 1)
		assert.Equal(t, "attr-1", attractions[0].ID)
	})

	t.Run("limit truncates", func(t *testing.T) {
		attractions, err := repo.ListAttractions(context.Background(), persistence.AttractionFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, attractions, 1)
		assert.Equal(t, "attr-3", attractions[0].ID)
	})
}

func TestAttractionRepository_NullableFields(t *testing.T) {
	pool := newTestPool(t)
	repo := NewAttractionRepository(pool)

	price := "$$"
	lat := 35.6586
	require.NoError(t, repo.CreateAttraction(context.Background(), persistence.Attraction{
		ID:          "attr-1",
		Name:        "Tokyo Tower",
		Destination: "Tokyo",
		Category:    "Landmark",
		Rating:      4.4,
		ReviewCount: 900,
		PricePoint:  &price,
		Lat:         &lat,
	}))

	got, err := repo.GetAttraction(context.Background(), "attr-1")
	require.NoError(t, err)
	require.NotNil(t, got.PricePoint)
	assert.Equal(t, "$$", *got.PricePoint)
	require.NotNil(t, got.Lat)
	assert.Equal(t, 35.6586, *got.Lat)
	assert.Nil(t, got.ImageURL)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.Lng)
	assert.Empty(t, got.OpeningHours)
}
