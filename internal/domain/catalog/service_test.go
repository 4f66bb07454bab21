package catalog_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/petshop-storefront/internal/domain/catalog"
)

var errAPIDown = errors.New("connection refused")

// stubClient serves canned data, or fails everything when down is set.
type stubClient struct {
	down     bool
	products []catalog.Product
}

func (c *stubClient) Products(ctx context.Context) ([]catalog.Product, error) {
	if c.down {
		return nil, errAPIDown
	}
	return c.products, nil
}

func (c *stubClient) ProductBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	if c.down {
		return nil, errAPIDown
	}
	for _, p := range c.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, errors.New("not found")
}

func (c *stubClient) Categories(ctx context.Context) ([]catalog.Category, error) {
	if c.down {
		return nil, errAPIDown
	}
	return []catalog.Category{{ID: "live-cat", Name: "Live"}}, nil
}

func (c *stubClient) Brands(ctx context.Context) ([]catalog.Brand, error) {
	if c.down {
		return nil, errAPIDown
	}
	return []catalog.Brand{{ID: "live-brand", Name: "Live"}}, nil
}

func (c *stubClient) Search(ctx context.Context, query string) ([]catalog.Product, error) {
	if c.down {
		return nil, errAPIDown
	}
	return catalog.Apply(c.products, catalog.Criteria{SearchQuery: query}), nil
}

func (c *stubClient) Featured(ctx context.Context, limit int) ([]catalog.Product, error) {
	return c.Products(ctx)
}

func (c *stubClient) SpecialOffers(ctx context.Context, limit int) ([]catalog.Product, error) {
	return c.Products(ctx)
}

func (c *stubClient) RelatedProducts(ctx context.Context, productID string, limit int) ([]catalog.Product, error) {
	return c.Products(ctx)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestServiceFallback(t *testing.T) {
	ctx := context.Background()
	live := []catalog.Product{
		{ID: "live-1", Title: "Cama para Cães", Slug: "cama-para-caes", Price: 8990, Discount: 25},
		{ID: "live-2", Title: "Arranhador", Slug: "arranhador", Price: 15990, Discount: 5},
		{ID: "live-3", Title: "Comedouro", Slug: "comedouro", Price: 3490},
	}

	t.Run("ServesLiveDataWhenAPIHealthy", func(t *testing.T) {
		svc := catalog.NewService(&stubClient{products: live}, quietLogger())
		products := svc.Products(ctx)
		assert.Equal(t, []string{"live-1", "live-2", "live-3"}, ids(products))
	})

	t.Run("FallsBackToStaticProductsOnError", func(t *testing.T) {
		svc := catalog.NewService(&stubClient{down: true}, quietLogger())
		products := svc.Products(ctx)
		require.NotEmpty(t, products)
		assert.Equal(t, "prod-1", products[0].ID)
	})

	t.Run("ProductBySlugChecksFallbackBeforeFailing", func(t *testing.T) {
		svc := catalog.NewService(&stubClient{down: true}, quietLogger())

		p, err := svc.ProductBySlug(ctx, "racao-premium-para-caes")
		require.NoError(t, err)
		assert.Equal(t, "prod-1", p.ID)

		_, err = svc.ProductBySlug(ctx, "nao-existe")
		require.Error(t, err)
	})

	t.Run("CategoriesAndBrandsFallBack", func(t *testing.T) {
		svc := catalog.NewService(&stubClient{down: true}, quietLogger())
		assert.Equal(t, catalog.FallbackCategories(), svc.Categories(ctx))
		assert.Equal(t, catalog.FallbackBrands(), svc.Brands(ctx))
	})

	t.Run("SearchDegradesToFilteringFallbackData", func(t *testing.T) {
		svc := catalog.NewService(&stubClient{down: true}, quietLogger())
		result := svc.Search(ctx, "brinquedo")
		require.Len(t, result, 1)
		assert.Equal(t, "prod-2", result[0].ID)
	})

	t.Run("SpecialOffersSortedByDiscount", func(t *testing.T) {
		svc := catalog.NewService(&stubClient{products: live}, quietLogger())
		offers := svc.SpecialOffers(ctx, 4)
		// Undiscounted products are excluded, best discount first.
		assert.Equal(t, []string{"live-1", "live-2"}, ids(offers))
	})

	t.Run("SpecialOffersRespectsLimit", func(t *testing.T) {
		svc := catalog.NewService(&stubClient{products: live}, quietLogger())
		offers := svc.SpecialOffers(ctx, 1)
		assert.Equal(t, []string{"live-1"}, ids(offers))
	})

	t.Run("RelatedProductsEmptyOnError", func(t *testing.T) {
		svc := catalog.NewService(&stubClient{down: true}, quietLogger())
		assert.Empty(t, svc.RelatedProducts(ctx, "live-1", 4))
	})
}
