package config

import (
	"testing"
)

// setRequiredEnv seeds the legacy variables a deployment must provide.
func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DB_USER", "maria")
	t.Setenv("DB_PASS", "s3cret")
	t.Setenv("ACCESS_TOKEN_SECRET", "token-secret")
	t.Setenv("STRIPE_ACCESS_TOKEN", "sk_test_123")
}

func TestLoadLegacyEnvMapping(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "6000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "6000" {
		t.Errorf("port = %s, want 6000", cfg.Server.Port)
	}
	if cfg.Database.User != "maria" || cfg.Database.Password != "s3cret" {
		t.Errorf("database credentials = %s/%s", cfg.Database.User, cfg.Database.Password)
	}
	if cfg.Auth.SecretKey != "token-secret" {
		t.Errorf("secret key = %s", cfg.Auth.SecretKey)
	}
	if cfg.Integration.StripeAccessToken != "sk_test_123" {
		t.Errorf("stripe token = %s", cfg.Integration.StripeAccessToken)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("port = %s, want default 5000", cfg.Server.Port)
	}
	if cfg.Database.Host != "localhost:27017" {
		t.Errorf("host = %s", cfg.Database.Host)
	}
	if cfg.Database.Scheme != "mongodb" {
		t.Errorf("scheme = %s", cfg.Database.Scheme)
	}
	if cfg.Database.Name != "maria-parlour" {
		t.Errorf("database name = %s", cfg.Database.Name)
	}
	if cfg.Redis.Address != "127.0.0.1:6379" {
		t.Errorf("redis address = %s", cfg.Redis.Address)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 1 || cfg.Server.CORSAllowedOrigins[0] != "*" {
		t.Errorf("cors origins = %v", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.Observability == nil {
		t.Fatal("observability defaults missing")
	}
	if cfg.Observability.ServiceName != "parlour-backend" {
		t.Errorf("service name = %s", cfg.Observability.ServiceName)
	}
}

func TestLoadPrefixedOverridesLegacy(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "6000")
	t.Setenv("PARLOUR_SERVER__PORT", "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "7000" {
		t.Errorf("port = %s, want prefixed override 7000", cfg.Server.Port)
	}
}

func TestLoadNestedPrefixedKeys(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PARLOUR_PRIMARY__ENV", "production")
	t.Setenv("PARLOUR_DATABASE__SCHEME", "mongodb+srv")
	t.Setenv("PARLOUR_SERVER__READ_TIMEOUT", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Primary.Env != "production" {
		t.Errorf("env = %s", cfg.Primary.Env)
	}
	if cfg.Database.Scheme != "mongodb+srv" {
		t.Errorf("scheme = %s", cfg.Database.Scheme)
	}
	if cfg.Server.ReadTimeout != 30 {
		t.Errorf("read timeout = %d", cfg.Server.ReadTimeout)
	}
}
