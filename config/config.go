package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	FoodDB  FoodDBConfig
	Session SessionConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port               string   `mapstructure:"port"`
	Environment        string   `mapstructure:"environment"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
	EnableDebugLogging bool     `mapstructure:"enable_debug_logging"`
}

// LLMConfig holds the LLM nutrition tier configuration. An empty API key
// disables the tier.
type LLMConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// FoodDBConfig holds the food-database tier configuration. Missing
// credentials disable the tier.
type FoodDBConfig struct {
	AppID   string `mapstructure:"app_id"`
	AppKey  string `mapstructure:"app_key"`
	BaseURL string `mapstructure:"base_url"`
}

// SessionConfig holds parse-session store configuration
type SessionConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/wellness/")

	// Environment variable settings
	v.SetEnvPrefix("WELLNESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. Every key needs a default
// (credentials default to empty) so AutomaticEnv overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.enable_debug_logging", false)

	// LLM tier defaults
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-4o-mini")

	// Food-database tier defaults
	v.SetDefault("fooddb.app_id", "")
	v.SetDefault("fooddb.app_key", "")
	v.SetDefault("fooddb.base_url", "https://api.edamam.com/api/food-database/v2")

	// Session store defaults
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.cleanup_interval", "5m")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got: %v", config.Session.TTL)
	}

	if config.Session.CleanupInterval <= 0 {
		return fmt.Errorf("session cleanup interval must be positive, got: %v", config.Session.CleanupInterval)
	}

	// Food-database credentials come as a pair
	if (config.FoodDB.AppID == "") != (config.FoodDB.AppKey == "") {
		return fmt.Errorf("food database credentials require both app ID and app key (set WELLNESS_FOODDB_APP_ID and WELLNESS_FOODDB_APP_KEY)")
	}

	if config.LLM.APIKey != "" && config.LLM.Model == "" {
		return fmt.Errorf("LLM model is required when the LLM tier is enabled (set WELLNESS_LLM_MODEL)")
	}

	return nil
}

// LLMEnabled reports whether the LLM nutrition tier is configured
func (c *Config) LLMEnabled() bool {
	return c.LLM.APIKey != ""
}

// FoodDBEnabled reports whether the food-database nutrition tier is configured
func (c *Config) FoodDBEnabled() bool {
	return c.FoodDB.AppID != "" && c.FoodDB.AppKey != ""
}
