// internal/domain/catalog/entity.go
package catalog

import (
	"encoding/json"
	"math"
	"time"
)

// Cents is a monetary amount in integer minor currency units (centavos).
// Every price in the module uses this unit; the ingestion boundary is the
// only place where anything else is tolerated.
type Cents int64

// UnmarshalJSON coerces API price fields into minor units. The upstream API
// has shipped both conventions at different times: integer values are taken
// as minor units already, fractional values as major units and scaled by 100.
// Anything non-numeric coerces to 0 instead of failing the whole payload.
func (c *Cents) UnmarshalJSON(data []byte) error {
	var raw json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		*c = 0
		return nil
	}
	if i, err := raw.Int64(); err == nil {
		*c = Cents(i)
		return nil
	}
	f, err := raw.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*c = 0
		return nil
	}
	*c = Cents(math.Round(f * 100))
	return nil
}

// Product represents a catalog product as served by the API.
// Products are read-only: the storefront derives views from them but
// never mutates or writes them back.
type Product struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Price         Cents     `json:"price"`
	OriginalPrice Cents     `json:"originalPrice,omitempty"`
	Discount      float64   `json:"discount,omitempty"` // percentage off
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	InStock       bool      `json:"inStock"`
	Stock         int       `json:"stock,omitempty"`
	Images        []string  `json:"images"`
	CategoryID    string    `json:"categoryId"`
	BrandID       string    `json:"brandId,omitempty"`
	Badges        []string  `json:"badges,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Category represents a product category
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
}

// Brand represents a product brand
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Logo string `json:"logo,omitempty"`
}

// Normalize clamps malformed numeric fields to safe defaults so a bad
// payload degrades to an odd-looking card, never a failure
func Normalize(products []Product) []Product {
	for i := range products {
		if products[i].Price < 0 {
			products[i].Price = 0
		}
		if products[i].OriginalPrice < 0 {
			products[i].OriginalPrice = 0
		}
		if products[i].Discount < 0 {
			products[i].Discount = 0
		}
		if products[i].Rating < 0 {
			products[i].Rating = 0
		}
		if products[i].ReviewCount < 0 {
			products[i].ReviewCount = 0
		}
		if products[i].Stock < 0 {
			products[i].Stock = 0
		}
	}
	return products
}
