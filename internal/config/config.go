package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	Backend     BackendConfig
	Gateway     GatewayConfig
	LogLevel    string
}

// BackendConfig is used to call the AppFashion store backend
type BackendConfig struct {
	BaseURL        string // e.g. https://api.appfashion.in
	APIToken       string // bearer token for one-shot CLI use; interactive callers supply their own TokenSource
	TimeoutSeconds int
}

// GatewayConfig carries the checkout-facing gateway settings. The key secret
// never reaches the client; intents are minted server-side.
type GatewayConfig struct {
	KeyID      string // public key id handed to the hosted checkout
	Currency   string
	ThemeColor string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GATEWAY_CURRENCY", "INR")
	viper.SetDefault("GATEWAY_THEME_COLOR", "#1B5E20")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", "30")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Backend: BackendConfig{
			BaseURL:        strings.TrimSpace(getEnvOrViper("APPFASHION_API_URL", "")),
			APIToken:       strings.TrimSpace(getEnvOrViper("APPFASHION_API_TOKEN", "")),
			TimeoutSeconds: viper.GetInt("HTTP_TIMEOUT_SECONDS"),
		},
		Gateway: GatewayConfig{
			KeyID:      strings.TrimSpace(getEnvOrViper("GATEWAY_KEY_ID", "")),
			Currency:   getEnvOrViper("GATEWAY_CURRENCY", "INR"),
			ThemeColor: getEnvOrViper("GATEWAY_THEME_COLOR", "#1B5E20"),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("APPFASHION_API_URL is required")
	}
	if cfg.Backend.TimeoutSeconds <= 0 {
		cfg.Backend.TimeoutSeconds = 30
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
