// Package config loads the application configuration from the environment,
// an optional .env file and built-in defaults.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/i474232898/temperature-heatmap/internal/climate/loader"
	"github.com/i474232898/temperature-heatmap/internal/logger"
)

type AppConfig struct {
	// DatasetURL is fetched once at startup.
	DatasetURL string `validate:"required,url"`

	// HTTPTimeout bounds the outbound fetch. Zero means no timeout.
	HTTPTimeout time.Duration `validate:"gte=0"`

	// FetchRetries is the number of extra attempts after the first.
	FetchRetries int `validate:"gte=0,lte=10"`

	// RefreshInterval re-runs load and render periodically. Zero loads once.
	RefreshInterval time.Duration `validate:"gte=0"`

	// StoreMaxHistory bounds the retained snapshots (0 = unlimited).
	StoreMaxHistory int `validate:"gte=0"`

	Port        string `validate:"required,numeric"`
	LogLevel    string `validate:"oneof=debug info warn error dpanic panic fatal"`
	Environment string `validate:"oneof=development production test"`
}

var validate = validator.New()

// Load reads configuration from .env, the environment and defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.GetLogger().Infow("No .env file loaded", "error", err)
	}

	v := viper.New()
	v.SetDefault("DATASET_URL", loader.DefaultURL)
	v.SetDefault("HTTP_TIMEOUT", "0s")
	v.SetDefault("FETCH_RETRIES", 0)
	v.SetDefault("REFRESH_INTERVAL", "0s")
	v.SetDefault("STORE_MAX_HISTORY", 5)
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENVIRONMENT", "development")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*AppConfig, error) {
	timeout, err := parseDuration(v, "HTTP_TIMEOUT")
	if err != nil {
		return nil, err
	}
	refresh, err := parseDuration(v, "REFRESH_INTERVAL")
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		DatasetURL:      v.GetString("DATASET_URL"),
		HTTPTimeout:     timeout,
		FetchRetries:    v.GetInt("FETCH_RETRIES"),
		RefreshInterval: refresh,
		StoreMaxHistory: v.GetInt("STORE_MAX_HISTORY"),
		Port:            v.GetString("PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		Environment:     v.GetString("ENVIRONMENT"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
