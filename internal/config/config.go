package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kutbudev/notebook-cli/internal/storage"
)

// Config represents the application configuration
type Config struct {
	APIBase         string `mapstructure:"api_base"`
	BackendURL      string `mapstructure:"backend_url"`
	Port            int    `mapstructure:"port"`
	LogLevel        string `mapstructure:"log_level"`
	HealthcheckPath string `mapstructure:"healthcheck_path"`
	FeatureFlags    string `mapstructure:"feature_flags"`
	DataDir         string `mapstructure:"data_dir"`
}

// Load loads configuration from environment variables and an optional config
// file. A missing config file is fine; defaults and env vars cover everything.
func Load() (*Config, error) {
	// Best-effort .env loading from the working directory.
	_ = godotenv.Load(".env")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("api_base", getEnv("API_BASE", ""))
	viper.SetDefault("backend_url", getEnv("BACKEND_URL", ""))
	viper.SetDefault("port", getEnvInt("PORT", 3000))
	viper.SetDefault("log_level", getEnv("LOG_LEVEL", "info"))
	viper.SetDefault("healthcheck_path", getEnv("HEALTHCHECK_PATH", "/health"))
	viper.SetDefault("feature_flags", getEnv("FEATURE_FLAGS", ""))
	viper.SetDefault("data_dir", getEnv("DATA_DIR", ""))

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.DataDir == "" {
		dir, err := storage.DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("unable to resolve data dir: %w", err)
		}
		config.DataDir = dir
	}

	return &config, nil
}

// BaseURL resolves the remote API base: API_BASE wins, then BACKEND_URL.
// Empty means the remote client runs in mock mode.
func (c *Config) BaseURL() string {
	if c.APIBase != "" {
		return c.APIBase
	}
	return c.BackendURL
}

// RemoteEnabled reports whether a remote API base is configured.
func (c *Config) RemoteEnabled() bool {
	return c.BaseURL() != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
