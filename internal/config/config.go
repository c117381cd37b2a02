package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Render RenderConfig
	App    AppConfig
}

type ServerConfig struct {
	Port           string
	BodyLimit      int
	AllowedOrigins string
}

type RenderConfig struct {
	FontsDir   string
	ChromePath string
	Timeout    time.Duration
	// RatePerSecond of 0 disables the render limiter.
	RatePerSecond float64
	Burst         int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads the configuration from the process environment without
// touching .env files or validating the result.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "3001"),
			BodyLimit:      getEnvAsInt("BODY_LIMIT", 5*1024*1024),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		},
		Render: RenderConfig{
			FontsDir:      getEnv("FONTS_DIR", "fonts"),
			ChromePath:    getEnv("CHROME_PATH", ""),
			Timeout:       getEnvAsDuration("RENDER_TIMEOUT", 60*time.Second),
			RatePerSecond: getEnvAsFloat("RENDER_RATE", 4),
			Burst:         getEnvAsInt("RENDER_BURST", 4),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Server.Port)
	}
	if c.Server.BodyLimit <= 0 {
		return fmt.Errorf("BODY_LIMIT must be positive")
	}
	if c.Render.FontsDir == "" {
		return fmt.Errorf("FONTS_DIR is required")
	}
	if c.Render.Timeout <= 0 {
		return fmt.Errorf("RENDER_TIMEOUT must be positive")
	}
	if c.Render.RatePerSecond < 0 {
		return fmt.Errorf("RENDER_RATE must not be negative")
	}
	if c.Render.RatePerSecond > 0 && c.Render.Burst < 1 {
		return fmt.Errorf("RENDER_BURST must be at least 1 when RENDER_RATE is set")
	}
	switch strings.ToLower(c.App.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.App.LogLevel)
	}
	return nil
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
