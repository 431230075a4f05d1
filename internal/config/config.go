package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Pricing  PricingConfig
	Seed     SeedConfig
	Booking  BookingConfig
	Demand   DemandConfig
	CORS     CORSConfig
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

// PricingConfig controls the AI pricing advisor
type PricingConfig struct {
	Enabled      bool
	Mode         string // "basic" or "seasonal"
	ArtifactPath string
}

// SeedConfig controls demo data seeding at startup
type SeedConfig struct {
	AutoSeed bool
}

// BookingConfig controls booking lifecycle behavior
type BookingConfig struct {
	AutoConfirm bool
}

// DemandConfig controls the periodic demand snapshot job
type DemandConfig struct {
	Enabled      bool
	CronSchedule string
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables.
// A .env file is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			GinMode:         getEnv("GIN_MODE", "debug"),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "tourism"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", ""),
			TokenExpiry: getEnvDuration("JWT_TOKEN_EXPIRY", 24*time.Hour),
		},
		Pricing: PricingConfig{
			Enabled:      getEnvBool("AI_PRICING_ENABLED", true),
			Mode:         getEnv("AI_PRICING_MODE", "seasonal"),
			ArtifactPath: getEnv("AI_PRICING_ARTIFACT", "artifacts/purchase_model.json"),
		},
		Seed: SeedConfig{
			AutoSeed: getEnvBool("AUTO_SEED", false),
		},
		Booking: BookingConfig{
			AutoConfirm: getEnvBool("BOOKING_AUTO_CONFIRM", false),
		},
		Demand: DemandConfig{
			Enabled:      getEnvBool("DEMAND_SNAPSHOT_ENABLED", true),
			CronSchedule: getEnv("DEMAND_SNAPSHOT_CRON", "0 * * * *"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present and coherent
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Database.Host == "" || c.Database.Name == "" {
		return fmt.Errorf("database host and name are required")
	}
	if c.Pricing.Mode != "basic" && c.Pricing.Mode != "seasonal" {
		return fmt.Errorf("AI_PRICING_MODE must be \"basic\" or \"seasonal\", got %q", c.Pricing.Mode)
	}
	return nil
}

// DSN builds the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
