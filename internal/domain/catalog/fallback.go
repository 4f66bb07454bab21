// internal/domain/catalog/fallback.go
package catalog

import "time"

// Static fallback data served when the catalog API is unreachable, so
// listing pages render a small real-looking catalog instead of an error.

// FallbackProducts returns the built-in product list
func FallbackProducts() []Product {
	now := time.Now().UTC()
	return []Product{
		{
			ID:            "prod-1",
			Title:         "Ração Premium para Cães",
			Slug:          "racao-premium-para-caes",
			Description:   "Ração completa e balanceada",
			Price:         12990,
			OriginalPrice: 14990,
			Discount:      13,
			Rating:        4.8,
			ReviewCount:   156,
			InStock:       true,
			Images:        []string{"/images/produto1.jpg"},
			CategoryID:    "cat-1",
			BrandID:       "brand-1",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:          "prod-2",
			Title:       "Brinquedo para Gatos",
			Slug:        "brinquedo-para-gatos",
			Description: "Divertido e seguro",
			Price:       4590,
			Rating:      4.5,
			ReviewCount: 89,
			InStock:     true,
			Images:      []string{"/images/produto2.jpg"},
			CategoryID:  "cat-2",
			BrandID:     "brand-2",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// FallbackCategories returns the built-in category list
func FallbackCategories() []Category {
	return []Category{
		{ID: "cat-1", Name: "Acessórios", Slug: "acessorios", Description: "Acessórios para pets"},
		{ID: "cat-2", Name: "Brinquedos", Slug: "brinquedos", Description: "Diversão para pets"},
	}
}

// FallbackBrands returns the built-in brand list
func FallbackBrands() []Brand {
	return []Brand{
		{ID: "brand-1", Name: "PetJoyz", Slug: "petjoyz"},
		{ID: "brand-2", Name: "FelinoFeliz", Slug: "felinofeliz"},
	}
}
