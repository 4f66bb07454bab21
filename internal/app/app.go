// internal/app/app.go
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/petshop-storefront/internal/config"
	"github.com/your-org/petshop-storefront/internal/domain/cart"
	"github.com/your-org/petshop-storefront/internal/domain/catalog"
	"github.com/your-org/petshop-storefront/internal/domain/checkout"
	"github.com/your-org/petshop-storefront/internal/domain/favorites"
	"github.com/your-org/petshop-storefront/internal/infrastructure/api"
	"github.com/your-org/petshop-storefront/internal/infrastructure/storage"
	"github.com/your-org/petshop-storefront/internal/pkg/auth"
	"github.com/your-org/petshop-storefront/internal/pkg/logger"
)

// App is the composition root: every storefront component wired from
// configuration. Embedding hosts construct one App and hand the stores and
// services to their pages; nothing else constructs core components.
type App struct {
	Config    *config.Config
	Logger    *logrus.Logger
	API       *api.Client
	Tokens    *auth.TokenStore
	Catalog   *catalog.Service
	Cart      *cart.Store
	Favorites *favorites.Store
	Checkout  *checkout.Service

	store storage.Store
}

// New builds the application from the given configuration
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New(cfg)

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenStore(store, cfg.Storage.TokenKey)
	client := api.NewClient(cfg, tokens)
	catalogService := catalog.NewService(client, log)

	cartStore, err := cart.NewStore(ctx, cart.NewRepository(store, cfg.Storage.CartKey))
	if err != nil {
		return nil, err
	}

	favoritesStore, err := favorites.NewStore(ctx, favorites.NewRepository(store, cfg.Storage.FavoritesKey))
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"app":              cfg.App.Name,
		"version":          cfg.App.Version,
		"environment":      cfg.App.Environment,
		"storage_provider": cfg.Storage.Provider,
	}).Info("Storefront initialized")

	return &App{
		Config:    cfg,
		Logger:    log,
		API:       client,
		Tokens:    tokens,
		Catalog:   catalogService,
		Cart:      cartStore,
		Favorites: favoritesStore,
		Checkout:  checkout.NewService(cfg, cartStore, log),
		store:     store,
	}, nil
}

// Close releases storage resources (the Redis connection for the redis
// provider; a no-op for file and memory)
func (a *App) Close() error {
	if closer, ok := a.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Provider {
	case "file":
		return storage.NewFileStore(cfg.Storage.DataDir)
	case "redis":
		return storage.NewRedisStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}
}
