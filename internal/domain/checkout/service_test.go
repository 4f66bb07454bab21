package checkout_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/petshop-storefront/internal/config"
	"github.com/your-org/petshop-storefront/internal/domain/cart"
	"github.com/your-org/petshop-storefront/internal/domain/catalog"
	"github.com/your-org/petshop-storefront/internal/domain/checkout"
	"github.com/your-org/petshop-storefront/internal/infrastructure/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		Checkout: config.CheckoutConfig{
			ProcessingDelay:   10 * time.Millisecond,
			FreeShippingOver:  19900,
			FlatShippingPrice: 1490,
		},
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newCart(t *testing.T) *cart.Store {
	t.Helper()
	repo := cart.NewRepository(storage.NewMemoryStore(), "petjoyz-cart")
	store, err := cart.NewStore(context.Background(), repo)
	require.NoError(t, err)
	return store
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyCartRejected", func(t *testing.T) {
		svc := checkout.NewService(testConfig(), newCart(t), quietLogger())
		_, err := svc.PlaceOrder(ctx, &checkout.PlaceOrderRequest{PaymentMethod: checkout.PaymentPix})
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	})

	t.Run("UnknownPaymentMethodRejected", func(t *testing.T) {
		svc := checkout.NewService(testConfig(), newCart(t), quietLogger())
		_, err := svc.PlaceOrder(ctx, &checkout.PlaceOrderRequest{PaymentMethod: "cheque"})
		assert.ErrorIs(t, err, checkout.ErrUnknownPaymentMethod)
	})

	t.Run("SuccessfulOrderClearsCart", func(t *testing.T) {
		cartStore := newCart(t)
		require.NoError(t, cartStore.Add(ctx, cart.Item{ID: "p1", Name: "Ração", Price: 12990}))
		require.NoError(t, cartStore.Add(ctx, cart.Item{ID: "p1", Name: "Ração", Price: 12990}))

		svc := checkout.NewService(testConfig(), cartStore, quietLogger())
		order, err := svc.PlaceOrder(ctx, &checkout.PlaceOrderRequest{PaymentMethod: checkout.PaymentCreditCard})
		require.NoError(t, err)

		assert.Equal(t, catalog.Cents(25980), order.Subtotal)
		assert.Equal(t, catalog.Cents(0), order.ShippingCost) // over the free-shipping threshold
		assert.Equal(t, catalog.Cents(25980), order.Total)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))

		assert.Empty(t, cartStore.Items())
		assert.Equal(t, 0, cartStore.Count())
	})

	t.Run("FlatShippingBelowThreshold", func(t *testing.T) {
		cartStore := newCart(t)
		require.NoError(t, cartStore.Add(ctx, cart.Item{ID: "p2", Name: "Petisco", Price: 990}))

		svc := checkout.NewService(testConfig(), cartStore, quietLogger())
		order, err := svc.PlaceOrder(ctx, &checkout.PlaceOrderRequest{PaymentMethod: checkout.PaymentBoleto})
		require.NoError(t, err)

		assert.Equal(t, catalog.Cents(990), order.Subtotal)
		assert.Equal(t, catalog.Cents(1490), order.ShippingCost)
		assert.Equal(t, catalog.Cents(2480), order.Total)
	})

	t.Run("CancelledContextAbortsAndKeepsCart", func(t *testing.T) {
		cfg := testConfig()
		cfg.Checkout.ProcessingDelay = 5 * time.Second

		cartStore := newCart(t)
		require.NoError(t, cartStore.Add(ctx, cart.Item{ID: "p1", Name: "Ração", Price: 12990}))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		svc := checkout.NewService(cfg, cartStore, quietLogger())
		_, err := svc.PlaceOrder(cancelled, &checkout.PlaceOrderRequest{PaymentMethod: checkout.PaymentPix})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, cartStore.Count())
	})

	t.Run("OrderNumbersAreUnique", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			cartStore := newCart(t)
			require.NoError(t, cartStore.Add(ctx, cart.Item{ID: "p1", Name: "Ração", Price: 100}))

			svc := checkout.NewService(testConfig(), cartStore, quietLogger())
			order, err := svc.PlaceOrder(ctx, &checkout.PlaceOrderRequest{PaymentMethod: checkout.PaymentPix})
			require.NoError(t, err)
			assert.False(t, seen[order.OrderNumber])
			seen[order.OrderNumber] = true
		}
	})
}

func TestPlaceOrderPriceRevalidation(t *testing.T) {
	ctx := context.Background()

	t.Run("RepricesFromLookup", func(t *testing.T) {
		cartStore := newCart(t)
		require.NoError(t, cartStore.Add(ctx, cart.Item{ID: "p1", Name: "Ração", Price: 12990}))

		svc := checkout.NewService(testConfig(), cartStore, quietLogger()).
			WithPriceLookup(func(ctx context.Context, productID string) (catalog.Cents, error) {
				return 9990, nil
			})

		order, err := svc.PlaceOrder(ctx, &checkout.PlaceOrderRequest{PaymentMethod: checkout.PaymentPix})
		require.NoError(t, err)
		assert.Equal(t, catalog.Cents(9990), order.Items[0].Price)
		assert.Equal(t, catalog.Cents(9990), order.Subtotal)
	})

	t.Run("LookupFailureAbortsCheckout", func(t *testing.T) {
		cartStore := newCart(t)
		require.NoError(t, cartStore.Add(ctx, cart.Item{ID: "p1", Name: "Ração", Price: 12990}))

		svc := checkout.NewService(testConfig(), cartStore, quietLogger()).
			WithPriceLookup(func(ctx context.Context, productID string) (catalog.Cents, error) {
				return 0, errors.New("catalog unavailable")
			})

		_, err := svc.PlaceOrder(ctx, &checkout.PlaceOrderRequest{PaymentMethod: checkout.PaymentPix})
		require.Error(t, err)
		assert.Equal(t, 1, cartStore.Count())
	})
}
