// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront client
type Config struct {
	App      AppConfig
	API      APIConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// APIConfig contains configuration for the external catalog API
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfig contains client-side persistence configuration.
// Keys must stay stable across app versions so persisted state
// (most importantly the cart) survives upgrades.
type StorageConfig struct {
	Provider     string // "file" or "redis"
	DataDir      string
	CartKey      string
	FavoritesKey string
	TokenKey     string
}

// RedisConfig contains Redis configuration for the remote storage backend
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// CheckoutConfig contains mock checkout configuration
type CheckoutConfig struct {
	ProcessingDelay   time.Duration
	FreeShippingOver  int64 // minor units
	FlatShippingPrice int64 // minor units
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Petshop Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "https://api.petjoyz.com.br/api"),
			Timeout: getEnvAsDuration("API_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Provider:     getEnv("STORAGE_PROVIDER", "file"),
			DataDir:      getEnv("STORAGE_DATA_DIR", "./data"),
			CartKey:      getEnv("STORAGE_CART_KEY", "petjoyz-cart"),
			FavoritesKey: getEnv("STORAGE_FAVORITES_KEY", "petjoyz-favorites"),
			TokenKey:     getEnv("STORAGE_TOKEN_KEY", "petjoyz_admin_token"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Checkout: CheckoutConfig{
			ProcessingDelay:   getEnvAsDuration("CHECKOUT_PROCESSING_DELAY", 2*time.Second),
			FreeShippingOver:  getEnvAsInt64("CHECKOUT_FREE_SHIPPING_OVER", 19900),
			FlatShippingPrice: getEnvAsInt64("CHECKOUT_FLAT_SHIPPING_PRICE", 1490),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}

	switch c.Storage.Provider {
	case "file":
		if c.Storage.DataDir == "" {
			return fmt.Errorf("STORAGE_DATA_DIR is required for the file provider")
		}
	case "redis":
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required for the redis provider")
		}
	default:
		return fmt.Errorf("unknown storage provider %q", c.Storage.Provider)
	}

	if c.Storage.CartKey == "" {
		return fmt.Errorf("STORAGE_CART_KEY is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
