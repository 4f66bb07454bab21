// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Client is the slice of the catalog API the service consumes
type Client interface {
	Products(ctx context.Context) ([]Product, error)
	ProductBySlug(ctx context.Context, slug string) (*Product, error)
	Categories(ctx context.Context) ([]Category, error)
	Brands(ctx context.Context) ([]Brand, error)
	Search(ctx context.Context, query string) ([]Product, error)
	Featured(ctx context.Context, limit int) ([]Product, error)
	SpecialOffers(ctx context.Context, limit int) ([]Product, error)
	RelatedProducts(ctx context.Context, productID string, limit int) ([]Product, error)
}

// Service handles catalog reads. API failures degrade to the built-in
// fallback data or an empty list, never an error reaching the page.
type Service struct {
	client Client
	logger *logrus.Logger
}

// NewService creates a new catalog service
func NewService(client Client, logger *logrus.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Products returns the full catalog, falling back to the static list when
// the API is unreachable
func (s *Service) Products(ctx context.Context) []Product {
	products, err := s.client.Products(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load products, serving fallback data")
		return FallbackProducts()
	}
	return Normalize(products)
}

// ProductBySlug returns a single product. When the API fails the fallback
// list is consulted before giving up.
func (s *Service) ProductBySlug(ctx context.Context, slug string) (*Product, error) {
	product, err := s.client.ProductBySlug(ctx, slug)
	if err == nil {
		normalized := Normalize([]Product{*product})
		return &normalized[0], nil
	}

	s.logger.WithError(err).WithField("slug", slug).Warn("Failed to load product, checking fallback data")
	for _, p := range FallbackProducts() {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %q not found: %w", slug, err)
}

// Categories returns all categories, falling back to the static list
func (s *Service) Categories(ctx context.Context) []Category {
	categories, err := s.client.Categories(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load categories, serving fallback data")
		return FallbackCategories()
	}
	return categories
}

// Brands returns all brands, falling back to the static list
func (s *Service) Brands(ctx context.Context) []Brand {
	brands, err := s.client.Brands(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load brands, serving fallback data")
		return FallbackBrands()
	}
	return brands
}

// Search returns products matching the query. Failures degrade to searching
// the fallback list locally.
func (s *Service) Search(ctx context.Context, query string) []Product {
	products, err := s.client.Search(ctx, query)
	if err != nil {
		s.logger.WithError(err).WithField("query", query).Warn("Search failed, filtering fallback data")
		return Apply(FallbackProducts(), Criteria{SearchQuery: query})
	}
	return Normalize(products)
}

// Featured returns the featured selection for the home page
func (s *Service) Featured(ctx context.Context, limit int) []Product {
	if limit <= 0 {
		limit = 8
	}
	products, err := s.client.Featured(ctx, limit)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load featured products, serving fallback data")
		products = FallbackProducts()
	}
	products = Normalize(products)
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

// SpecialOffers returns discounted products, best discount first. When the
// offers endpoint fails the offers view is derived from the full catalog.
func (s *Service) SpecialOffers(ctx context.Context, limit int) []Product {
	if limit <= 0 {
		limit = 4
	}
	products, err := s.client.SpecialOffers(ctx, limit)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load special offers, deriving from catalog")
		products = s.Products(ctx)
	}
	offers := Apply(Normalize(products), Criteria{
		DiscountedOnly: true,
		SortKey:        SortDiscountDesc,
	})
	if len(offers) > limit {
		offers = offers[:limit]
	}
	return offers
}

// RelatedProducts returns products related to the given one. Failures yield
// an empty list; the detail page simply hides the section.
func (s *Service) RelatedProducts(ctx context.Context, productID string, limit int) []Product {
	if limit <= 0 {
		limit = 4
	}
	products, err := s.client.RelatedProducts(ctx, productID, limit)
	if err != nil {
		s.logger.WithError(err).WithField("product_id", productID).Warn("Failed to load related products")
		return []Product{}
	}
	products = Normalize(products)
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}
