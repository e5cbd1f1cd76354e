// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), maps them into structured Go types, and validates that
// required values are present so the app fails fast on bad config.
//
// Two naming schemes are supported:
//   - `PARLOUR_`-prefixed keys with `__` as the nesting delimiter,
//     e.g. PARLOUR_SERVER__PORT -> Config.Server.Port
//   - the legacy un-prefixed names the deployment already uses:
//     PORT, DB_USER, DB_PASS, ACCESS_TOKEN_SECRET, STRIPE_ACCESS_TOKEN
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if one
	// exists, before any env vars are read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional; defaults are injected
// at load time when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary"`
	Server        ServerConfig         `koanf:"server"`
	Database      DatabaseConfig       `koanf:"database"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port"`
	ReadTimeout        int      `koanf:"read_timeout"`
	WriteTimeout       int      `koanf:"write_timeout"`
	IdleTimeout        int      `koanf:"idle_timeout"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig contains document-store connection parameters.
//
// Scheme selects between "mongodb" (host:port deployments) and
// "mongodb+srv" (DNS seed list, e.g. Atlas clusters).
type DatabaseConfig struct {
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Host     string `koanf:"host"`
	Scheme   string `koanf:"scheme"`
	Name     string `koanf:"name"`
}

// RedisConfig contains Redis connection details ("host:port").
// Redis backs the background job queue.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// AuthConfig stores the process-wide token signing/verification key.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
}

// IntegrationConfig stores credentials for external services.
type IntegrationConfig struct {
	// StripeAccessToken is the payment processor API key.
	StripeAccessToken string `koanf:"stripe_access_token" validate:"required"`

	// ResendAPIKey is the transactional email provider key.
	// Empty disables outgoing email; jobs then log and succeed.
	ResendAPIKey string `koanf:"resend_api_key"`
}

// legacyEnvKeys maps the un-prefixed environment variables enumerated by the
// existing deployment onto nested config keys. Anything not listed here is
// ignored by the legacy provider.
var legacyEnvKeys = map[string]string{
	"PORT":                "server.port",
	"DB_USER":             "database.user",
	"DB_PASS":             "database.password",
	"ACCESS_TOKEN_SECRET": "auth.secret_key",
	"STRIPE_ACCESS_TOKEN": "integration.stripe_access_token",
}

// Load reads configuration from environment variables, unmarshals it into
// Config, applies defaults, and validates the result.
//
// Load order (later wins):
//  1. legacy un-prefixed vars (PORT, DB_USER, ...)
//  2. PARLOUR_-prefixed vars
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	// Legacy names first, so prefixed vars can override them.
	err := k.Load(env.Provider("", ".", func(s string) string {
		return legacyEnvKeys[s]
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load legacy env variables")
	}

	// PARLOUR_SERVER__PORT -> server.port. Double underscore is the nesting
	// delimiter; single underscores stay part of the key (read_timeout).
	err = k.Load(env.Provider("PARLOUR_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PARLOUR_")), "__", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load env variables")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal main config")
	}

	mainConfig.applyDefaults()

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	// Service name and environment are forced from the primary config so
	// telemetry sees consistent naming.
	mainConfig.Observability.ServiceName = "parlour-backend"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}

// applyDefaults fills optional config blocks so a deployment only needs the
// five legacy variables to boot.
func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = "local"
	}
	if c.Server.Port == "" {
		c.Server.Port = "5000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	// CORS is open to all origins.
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = []string{"*"}
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost:27017"
	}
	if c.Database.Scheme == "" {
		c.Database.Scheme = "mongodb"
	}
	if c.Database.Name == "" {
		c.Database.Name = "maria-parlour"
	}
	if c.Redis.Address == "" {
		c.Redis.Address = "127.0.0.1:6379"
	}
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}
}
