// internal/infrastructure/api/client.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/your-org/petshop-storefront/internal/config"
	"github.com/your-org/petshop-storefront/internal/domain/catalog"
)

// TokenSource yields the admin bearer token, or an empty string when the
// request should go out unauthenticated
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// APIError represents a non-2xx response from the catalog API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client is a thin wrapper around the storefront REST API. It implements
// catalog.Client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates an API client from the configuration. tokens may be nil
// for a client that never authenticates.
func NewClient(cfg *config.Config, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		tokens: tokens,
	}
}

// Products fetches the full product list
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductBySlug fetches a single product by its slug
func (c *Client) ProductBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	var product catalog.Product
	if err := c.get(ctx, "/products/slug/"+url.PathEscape(slug), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories fetches all categories
func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := c.get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryBySlug fetches a single category by its slug
func (c *Client) CategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	var category catalog.Category
	if err := c.get(ctx, "/categories/slug/"+url.PathEscape(slug), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Brands fetches all brands
func (c *Client) Brands(ctx context.Context) ([]catalog.Brand, error) {
	var brands []catalog.Brand
	if err := c.get(ctx, "/brands", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// BrandBySlug fetches a single brand by its slug
func (c *Client) BrandBySlug(ctx context.Context, slug string) (*catalog.Brand, error) {
	var brand catalog.Brand
	if err := c.get(ctx, "/brands/slug/"+url.PathEscape(slug), &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// Search fetches products matching the query
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.get(ctx, "/search?q="+url.QueryEscape(query), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Featured fetches the featured product selection
func (c *Client) Featured(ctx context.Context, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.get(ctx, fmt.Sprintf("/products/featured?limit=%d", limit), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SpecialOffers fetches the discounted product selection
func (c *Client) SpecialOffers(ctx context.Context, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.get(ctx, fmt.Sprintf("/products/offers?limit=%d", limit), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// RelatedProducts fetches products related to the given product id
func (c *Client) RelatedProducts(ctx context.Context, productID string, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	path := fmt.Sprintf("/products/%s/related?limit=%d", url.PathEscape(productID), limit)
	if err := c.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to read auth token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
