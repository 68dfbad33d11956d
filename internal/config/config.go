package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yigit/cgpatracker/internal/pkg/grading"
	"github.com/yigit/cgpatracker/internal/pkg/helpers"
)

// Session store kinds
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port" env:"SERVER_PORT"`
		Mode           string   `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
	} `yaml:"server"`

	Session struct {
		Store         string `yaml:"store" env:"SESSION_STORE"`
		TTL           string `yaml:"ttl" env:"SESSION_TTL"`
		PurgeInterval string `yaml:"purge_interval" env:"SESSION_PURGE_INTERVAL"`
		CookieName    string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		CookieSecure  bool   `yaml:"cookie_secure" env:"SESSION_COOKIE_SECURE"`
	} `yaml:"session"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
		Prefix   string `yaml:"prefix" env:"REDIS_PREFIX"`
	} `yaml:"redis"`

	Grading struct {
		DefaultScale      string               `yaml:"default_scale" env:"GRADING_DEFAULT_SCALE"`
		MinCredits        int                  `yaml:"min_credits" env:"GRADING_MIN_CREDITS"`
		MaxCredits        int                  `yaml:"max_credits" env:"GRADING_MAX_CREDITS"`
		MaxStudyHours     int                  `yaml:"max_study_hours" env:"GRADING_MAX_STUDY_HOURS"`
		MaxExtraHours     int                  `yaml:"max_extra_hours" env:"GRADING_MAX_EXTRA_HOURS"`
		DefaultExtraHours int                  `yaml:"default_extra_hours" env:"GRADING_DEFAULT_EXTRA_HOURS"`
		Scales            []grading.GradeScale `yaml:"scales"`
	} `yaml:"grading"`

	Report struct {
		ChartWidth  int     `yaml:"chart_width" env:"REPORT_CHART_WIDTH"`
		ChartHeight int     `yaml:"chart_height" env:"REPORT_CHART_HEIGHT"`
		FontPath    string  `yaml:"font_path" env:"REPORT_FONT_PATH"`
		FontSize    float64 `yaml:"font_size" env:"REPORT_FONT_SIZE"`
	} `yaml:"report"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A .env file next to the working directory is loaded first when present.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = []string{"*"}

	// Session defaults
	config.Session.Store = SessionStoreMemory
	config.Session.TTL = "2h"
	config.Session.PurgeInterval = "5m"
	config.Session.CookieName = "cgpa_session"

	// Redis defaults
	config.Redis.Addr = "localhost:6379"
	config.Redis.Prefix = "cgpa:session:"

	// Grading defaults
	config.Grading.DefaultScale = grading.ScaleExtended
	config.Grading.MinCredits = 1
	config.Grading.MaxCredits = 10
	config.Grading.MaxStudyHours = 50
	config.Grading.MaxExtraHours = 20
	config.Grading.DefaultExtraHours = 2

	// Report defaults
	config.Report.ChartWidth = 800
	config.Report.ChartHeight = 600
	config.Report.FontSize = 12

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return applyEnv(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Session.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if config.Redis.Addr == "" {
			return fmt.Errorf("redis address is required for the redis session store")
		}
	default:
		return fmt.Errorf("unknown session store %q", config.Session.Store)
	}

	ttl, err := time.ParseDuration(config.Session.TTL)
	if err != nil {
		return fmt.Errorf("invalid session ttl format: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}

	purge, err := time.ParseDuration(config.Session.PurgeInterval)
	if err != nil {
		return fmt.Errorf("invalid session purge interval format: %w", err)
	}
	if purge <= 0 {
		return fmt.Errorf("session purge interval must be positive")
	}

	if config.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}

	g := config.Grading
	if g.MinCredits < 1 {
		return fmt.Errorf("grading.min_credits must be at least 1")
	}
	if g.MaxCredits < g.MinCredits {
		return fmt.Errorf("grading.max_credits must not be below min_credits")
	}
	if g.MaxStudyHours < 0 || g.MaxExtraHours < 0 {
		return fmt.Errorf("grading hour bounds cannot be negative")
	}
	if g.DefaultExtraHours < 0 || g.DefaultExtraHours > g.MaxExtraHours {
		return fmt.Errorf("grading.default_extra_hours must be within 0..%d", g.MaxExtraHours)
	}

	if config.Report.ChartWidth <= 0 || config.Report.ChartHeight <= 0 {
		return fmt.Errorf("report chart size must be positive")
	}

	return nil
}

// SessionTTL returns the parsed session lifetime.
func (c *Config) SessionTTL() time.Duration {
	return helpers.ParseDuration(c.Session.TTL, 2*time.Hour)
}

// SessionPurgeInterval returns how often expired in-memory sessions are dropped.
func (c *Config) SessionPurgeInterval() time.Duration {
	return helpers.ParseDuration(c.Session.PurgeInterval, 5*time.Minute)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
