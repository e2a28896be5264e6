package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Development defaults that must not survive into production.
// ValidateForProduction rejects them when ENVIRONMENT=production.
const (
	defaultJWTSecret     = "dev-jwt-secret-32-bytes-long!!!!"
	defaultAdminPassword = "secure123"
)

// Config holds all configuration for the application
type Config struct {
	// MongoDB
	MongoURI      string `conf:"default:mongodb://localhost:27017,env:MONGODB_URI"`
	MongoDatabase string `conf:"default:aquacatalog,env:MONGODB_DATABASE"`

	// Cloudinary
	CloudinaryCloudName string `conf:"default:demo,env:CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `conf:"env:CLOUDINARY_API_KEY,noprint"`
	CloudinaryAPISecret string `conf:"env:CLOUDINARY_API_SECRET,noprint"`
	CloudinaryFolder    string `conf:"default:models,env:CLOUDINARY_FOLDER"`

	// Application
	ListenAddr  string `conf:"default::8080,env:LISTEN_ADDR"`
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Auth — the single admin credential pair and the token signing key
	AdminUsername string        `conf:"default:admin,env:ADMIN_USERNAME"`
	AdminPassword string        `conf:"default:secure123,env:ADMIN_PASSWORD,noprint"`
	JWTSecret     string        `conf:"default:dev-jwt-secret-32-bytes-long!!!!,env:JWT_SECRET_KEY,noprint"`
	TokenTTL      time.Duration `conf:"default:24h,env:TOKEN_TTL"`

	// CORS — comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:aquacatalog,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.JWTSecret == defaultJWTSecret || len(cfg.JWTSecret) < 32 {
		errs = append(errs, fmt.Sprintf(
			"JWT_SECRET_KEY must be a non-default value of at least 32 bytes (got %d); generate with: openssl rand -base64 32",
			len(cfg.JWTSecret),
		))
	}

	if cfg.AdminPassword == defaultAdminPassword {
		errs = append(errs, "ADMIN_PASSWORD must not be the development default")
	}

	if cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		errs = append(errs, "CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required")
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
