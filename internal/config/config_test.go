package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/temperature-heatmap/internal/climate/loader"
	"github.com/i474232898/temperature-heatmap/internal/logger"
)

func init() {
	logger.IsTest = true
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DATASET_URL", "HTTP_TIMEOUT", "FETCH_RETRIES", "REFRESH_INTERVAL",
		"STORE_MAX_HISTORY", "PORT", "LOG_LEVEL", "ENVIRONMENT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, loader.DefaultURL, cfg.DatasetURL)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, 0, cfg.FetchRetries)
	assert.Equal(t, time.Duration(0), cfg.RefreshInterval)
	assert.Equal(t, 5, cfg.StoreMaxHistory)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadReadsLoggerSettingsFromDotEnv(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "ENVIRONMENT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nENVIRONMENT=production\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATASET_URL", "http://localhost:9999/data.json")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("FETCH_RETRIES", "2")
	t.Setenv("REFRESH_INTERVAL", "1h")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/data.json", cfg.DatasetURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 2, cfg.FetchRetries)
	assert.Equal(t, time.Hour, cfg.RefreshInterval)
	assert.Equal(t, "9090", cfg.Port)
}

func TestInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"duration": {"HTTP_TIMEOUT", "soon"},
		"url":      {"DATASET_URL", "not a url"},
		"retries":  {"FETCH_RETRIES", "-1"},
		"port":     {"PORT", "http"},
		"level":    {"LOG_LEVEL", "loud"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			v.SetDefault("DATASET_URL", loader.DefaultURL)
			v.SetDefault("HTTP_TIMEOUT", "0s")
			v.SetDefault("REFRESH_INTERVAL", "0s")
			v.SetDefault("PORT", "8080")
			v.SetDefault("LOG_LEVEL", "info")
			v.SetDefault("ENVIRONMENT", "development")
			v.Set(kv[0], kv[1])

			_, err := fromViper(v)
			assert.Error(t, err)
		})
	}
}
