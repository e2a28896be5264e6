package config_test

import (
	"testing"

	"github.com/ghuser/aquacatalog/pkg/config"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != config.EnvDevelopment {
		t.Errorf("expected development default, got %q", cfg.Environment)
	}
	if cfg.MongoDatabase == "" {
		t.Error("expected non-empty default database name")
	}
	if cfg.TokenTTL <= 0 {
		t.Errorf("expected positive default token TTL, got %v", cfg.TokenTTL)
	}
}

func TestValidateForProduction_nonProductionIsNoop(t *testing.T) {
	cfg := &config.Config{Environment: config.EnvDevelopment}
	if err := config.ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil for non-production, got %v", err)
	}
}

func TestValidateForProduction_rejectsDefaults(t *testing.T) {
	cfg := &config.Config{
		Environment:   config.EnvProduction,
		JWTSecret:     "dev-jwt-secret-32-bytes-long!!!!",
		AdminPassword: "secure123",
		LogLevel:      "debug",
	}
	if err := config.ValidateForProduction(cfg); err == nil {
		t.Fatal("expected error for default secrets in production")
	}
}

func TestValidateForProduction_acceptsHardenedConfig(t *testing.T) {
	cfg := &config.Config{
		Environment:         config.EnvProduction,
		JWTSecret:           "a-properly-random-secret-of-32+b!",
		AdminPassword:       "not-the-default",
		CloudinaryAPIKey:    "key",
		CloudinaryAPISecret: "secret",
		LogLevel:            "info",
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
