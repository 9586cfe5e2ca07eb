package view

import "github.com/mvieira/catalogfront/internal/models"

// Stats is the dashboard summary, recomputed from the in-memory collection on
// every render pass.
type Stats struct {
	TotalProducts int
	Categories    []string
	WithImages    int
	AvgPrice      float64
}

// CalculateStats aggregates the loaded products. Categories keeps distinct
// non-empty values in first-seen order; AvgPrice is 0 for an empty collection.
func CalculateStats(products []models.Product) Stats {
	stats := Stats{TotalProducts: len(products)}

	seen := make(map[string]bool)
	var sum float64
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			stats.Categories = append(stats.Categories, p.Category)
		}
		if p.ImageURL != "" {
			stats.WithImages++
		}
		sum += p.Price
	}
	if len(products) > 0 {
		stats.AvgPrice = sum / float64(len(products))
	}
	return stats
}

// FilterByCategory returns the subset with an exact category match. The
// sentinel "all" bypasses filtering entirely.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "all" || category == "" {
		return products
	}
	var filtered []models.Product
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
