// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/petshop-storefront/internal/config"
	"github.com/your-org/petshop-storefront/internal/domain/cart"
	"github.com/your-org/petshop-storefront/internal/domain/catalog"
)

var (
	// ErrEmptyCart is returned when placing an order with no items
	ErrEmptyCart = errors.New("checkout: cart is empty")
	// ErrUnknownPaymentMethod is returned for an unsupported payment method
	ErrUnknownPaymentMethod = errors.New("checkout: unknown payment method")
)

// PaymentMethod identifies how the order will be paid
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit-card"
	PaymentPix        PaymentMethod = "pix"
	PaymentBoleto     PaymentMethod = "boleto"
)

// PriceLookup resolves the current catalog price for a product id. Optional:
// when configured, line items are re-priced before the order is placed.
type PriceLookup func(ctx context.Context, productID string) (catalog.Cents, error)

// Service handles the mock checkout flow. Payment is simulated with a
// configurable processing delay; no gateway is involved.
type Service struct {
	config      *config.Config
	cartStore   *cart.Store
	logger      *logrus.Logger
	priceLookup PriceLookup
}

// NewService creates a new checkout service
func NewService(cfg *config.Config, cartStore *cart.Store, logger *logrus.Logger) *Service {
	return &Service{
		config:    cfg,
		cartStore: cartStore,
		logger:    logger,
	}
}

// WithPriceLookup enables re-pricing cart snapshots from the live catalog
// just before the order is placed. Whether stale snapshots should ever be
// honored is a product decision; the default keeps the add-time price.
func (s *Service) WithPriceLookup(lookup PriceLookup) *Service {
	s.priceLookup = lookup
	return s
}

// PlaceOrderRequest represents a checkout submission
type PlaceOrderRequest struct {
	PaymentMethod PaymentMethod `json:"payment_method"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerEmail string        `json:"customer_email,omitempty"`
}

// Order represents a completed mock order
type Order struct {
	OrderNumber   string          `json:"order_number"`
	Items         []cart.LineItem `json:"items"`
	Subtotal      catalog.Cents   `json:"sub_total"`
	ShippingCost  catalog.Cents   `json:"shipping_cost"`
	Total         catalog.Cents   `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PlacedAt      time.Time       `json:"placed_at"`
}

// PlaceOrder runs the simulated payment flow: validate, wait out the
// processing delay, snapshot the order, then clear the cart. The delay is
// cancellable through the context; a cancelled checkout leaves the cart
// untouched.
func (s *Service) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*Order, error) {
	switch req.PaymentMethod {
	case PaymentCreditCard, PaymentPix, PaymentBoleto:
	default:
		return nil, ErrUnknownPaymentMethod
	}

	items := s.cartStore.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if s.priceLookup != nil {
		if err := s.repriceItems(ctx, items); err != nil {
			return nil, err
		}
	}

	// Simulate payment processing
	timer := time.NewTimer(s.config.Checkout.ProcessingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	order := &Order{
		OrderNumber:   s.generateOrderNumber(),
		Items:         items,
		PaymentMethod: req.PaymentMethod,
		PlacedAt:      time.Now().UTC(),
	}
	for _, item := range items {
		order.Subtotal += item.Price * catalog.Cents(item.Quantity)
	}
	order.ShippingCost = s.shippingCost(order.Subtotal)
	order.Total = order.Subtotal + order.ShippingCost

	if err := s.cartStore.Clear(ctx); err != nil {
		return nil, fmt.Errorf("order %s placed but cart not cleared: %w", order.OrderNumber, err)
	}

	s.logger.WithFields(logrus.Fields{
		"order_number":   order.OrderNumber,
		"payment_method": order.PaymentMethod,
		"total":          order.Total,
		"items":          len(order.Items),
	}).Info("Order placed")

	return order, nil
}

// Orders at or above the free-shipping threshold ship free.
func (s *Service) shippingCost(subtotal catalog.Cents) catalog.Cents {
	if subtotal >= catalog.Cents(s.config.Checkout.FreeShippingOver) {
		return 0
	}
	return catalog.Cents(s.config.Checkout.FlatShippingPrice)
}

func (s *Service) repriceItems(ctx context.Context, items []cart.LineItem) error {
	for i := range items {
		price, err := s.priceLookup(ctx, items[i].ID)
		if err != nil {
			return fmt.Errorf("failed to revalidate price for %q: %w", items[i].ID, err)
		}
		items[i].Price = price
	}
	return nil
}

func (s *Service) generateOrderNumber() string {
	// Format: ORD-YYYYMMDD-XXXXXXXX
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
