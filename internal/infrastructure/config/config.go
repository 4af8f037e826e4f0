package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=3000"`
	Env           string `env:"ENV,            default=development"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	SessionSecret string `env:"SESSION_SECRET"`
	// PublicBaseURL is this gateway's externally reachable origin, used to
	// build the payment success/fail return URLs.
	PublicBaseURL string `env:"PUBLIC_BASE_URL, default=http://localhost:3000"`

	Backend BackendConfig
	Payment PaymentConfig
	Redis   RedisConfig
	Mongo   MongoConfig
}

type BackendConfig struct {
	// BaseURL may be given with or without the /api suffix.
	BaseURL string        `env:"API_BASE_URL, default=http://localhost:8080/api"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=10s"`
}

type PaymentConfig struct {
	// Provider selects the payment integration: "redirect" or "widget".
	Provider string `env:"PAYMENT_PROVIDER,        default=redirect"`
	// ConfirmChannel is the path segment of the backend's confirmation
	// endpoint used by the redirect variant.
	ConfirmChannel string `env:"PAYMENT_CONFIRM_CHANNEL, default=test"`

	MidtransServerKey  string `env:"MIDTRANS_SERVER_KEY"`
	MidtransClientKey  string `env:"MIDTRANS_CLIENT_KEY"`
	MidtransProduction bool   `env:"MIDTRANS_PRODUCTION, default=false"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return &cfg
}

// Validate rejects configurations that would start the gateway in an
// unusable or unsafe state. Session tokens are HMAC-signed, so running
// without a secret would accept tokens signed with an empty key.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set")
	}
	if c.Payment.Provider == "widget" && c.Payment.MidtransServerKey == "" {
		return fmt.Errorf("MIDTRANS_SERVER_KEY must be set for the widget payment provider")
	}
	return nil
}
