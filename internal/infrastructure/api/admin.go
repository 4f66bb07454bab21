// internal/infrastructure/api/admin.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/your-org/petshop-storefront/internal/domain/catalog"
)

// LoginRequest represents admin credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the opaque bearer token issued by the API. The
// client never inspects it, only stores and forwards it.
type LoginResponse struct {
	Token string `json:"token"`
}

// ProductInput represents the writable product fields for admin CRUD
type ProductInput struct {
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Price         catalog.Cents `json:"price"`
	OriginalPrice catalog.Cents `json:"originalPrice,omitempty"`
	Discount      float64       `json:"discount,omitempty"`
	InStock       bool          `json:"inStock"`
	Stock         int           `json:"stock,omitempty"`
	Images        []string      `json:"images,omitempty"`
	CategoryID    string        `json:"categoryId"`
	BrandID       string        `json:"brandId,omitempty"`
	Badges        []string      `json:"badges,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
}

// Login exchanges admin credentials for a bearer token
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to serialize credentials: %w", err)
	}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", bytes.NewReader(body), &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login succeeded but no token returned")
	}
	return resp.Token, nil
}

// CreateProduct creates a product. Requires an admin token.
func (c *Client) CreateProduct(ctx context.Context, input *ProductInput) (*catalog.Product, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize product: %w", err)
	}

	var product catalog.Product
	if err := c.do(ctx, http.MethodPost, "/products", bytes.NewReader(body), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a product by id. Requires an admin token.
func (c *Client) UpdateProduct(ctx context.Context, id string, input *ProductInput) (*catalog.Product, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize product: %w", err)
	}

	var product catalog.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), bytes.NewReader(body), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct deletes a product by id. Requires an admin token.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}
