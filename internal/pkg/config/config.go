package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments or carry secrets
//   (Stripe credentials)
// - default: Values common across all environments (timezone, CORS, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
	Log    LogConfig
	Stripe StripeConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
	// PublicBaseURL overrides the per-request scheme+host used to build the
	// payment redirect URLs. Leave empty to derive it from the request.
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:""`
}

type StoreConfig struct {
	// DSN selects the Postgres-backed catalog when set. Empty means the
	// seeded in-memory store, which is the default deployment mode.
	DSN string `envconfig:"DB_DSN" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

type StripeConfig struct {
	SecretKey      string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	PublishableKey string `envconfig:"STRIPE_PUBLISHABLE_KEY" default:""`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://test.local",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Stripe: StripeConfig{
			SecretKey:      "sk_test_dummy",
			PublishableKey: "pk_test_dummy",
		},
	}
}
