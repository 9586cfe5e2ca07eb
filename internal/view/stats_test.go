package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvieira/catalogfront/internal/models"
)

func TestCalculateStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		products   []models.Product
		total      int
		categories []string
		withImages int
		avgPrice   float64
	}{
		{
			name:     "empty collection",
			products: nil,
			total:    0,
			avgPrice: 0,
		},
		{
			name: "two products one empty category",
			products: []models.Product{
				{ID: 1, Name: "A", Price: 10, Category: "X"},
				{ID: 2, Name: "B", Price: 20, Category: ""},
			},
			total:      2,
			categories: []string{"X"},
			withImages: 0,
			avgPrice:   15,
		},
		{
			name: "categories keep first-seen order",
			products: []models.Product{
				{Name: "a", Category: "Zeta", Price: 1},
				{Name: "b", Category: "Alpha", Price: 1},
				{Name: "c", Category: "Zeta", Price: 1},
				{Name: "d", Category: "Mid", Price: 1, ImageURL: "x.png"},
			},
			total:      4,
			categories: []string{"Zeta", "Alpha", "Mid"},
			withImages: 1,
			avgPrice:   1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stats := CalculateStats(tt.products)
			assert.Equal(t, tt.total, stats.TotalProducts)
			assert.Equal(t, tt.categories, stats.Categories)
			assert.Equal(t, tt.withImages, stats.WithImages)
			assert.InDelta(t, tt.avgPrice, stats.AvgPrice, 1e-9)
		})
	}
}

func TestCalculateStats_AvgPriceZeroOnlyWhenEmpty(t *testing.T) {
	t.Parallel()

	require.Zero(t, CalculateStats(nil).AvgPrice)
	require.NotZero(t, CalculateStats([]models.Product{{Name: "a", Price: 3}}).AvgPrice)
}

func TestFilterByCategory(t *testing.T) {
	t.Parallel()

	products := []models.Product{
		{ID: 1, Category: "X"},
		{ID: 2, Category: "Y"},
		{ID: 3, Category: "X"},
		{ID: 4, Category: ""},
	}

	t.Run("all returns collection unchanged", func(t *testing.T) {
		t.Parallel()
		got := FilterByCategory(products, "all")
		require.Equal(t, products, got)
	})

	t.Run("exact match subset", func(t *testing.T) {
		t.Parallel()
		got := FilterByCategory(products, "X")
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})

	t.Run("no match is empty", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, FilterByCategory(products, "Z"))
	})
}
