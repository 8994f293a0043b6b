package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Worker   WorkerConfig
	Backend  BackendConfig
	Gateway  GatewayConfig
	Purchase PurchaseConfig
	Log      LogConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"coin_purchases"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"2"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}
type WorkerConfig struct {
	ReconcileInterval   time.Duration `env:"WORKER_RECONCILE_INTERVAL" envDefault:"5m"`
	SweepInterval       time.Duration `env:"WORKER_SWEEP_INTERVAL" envDefault:"1m"`
	DialogueIdleTimeout time.Duration `env:"DIALOGUE_IDLE_TIMEOUT" envDefault:"30m"`
}

// BackendConfig points at the marketplace backend that issues client secrets and credits coins.
type BackendConfig struct {
	URL      string        `env:"BACKEND_URL" envDefault:"http://localhost:5000"`
	APIToken string        `env:"BACKEND_API_TOKEN"`
	Timeout  time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`
}

// GatewayConfig points at the Stripe-compatible payment gateway.
type GatewayConfig struct {
	URL            string        `env:"GATEWAY_URL" envDefault:"https://api.stripe.com"`
	PublishableKey string        `env:"GATEWAY_PUBLISHABLE_KEY"`
	Timeout        time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"30s"`
}
type PurchaseConfig struct {
	CatalogFile          string        `env:"CATALOG_FILE"`
	AuthorizationTimeout time.Duration `env:"AUTHORIZATION_TIMEOUT" envDefault:"30s"`
	CreditTimeout        time.Duration `env:"CREDIT_TIMEOUT" envDefault:"30s"`
	JournalEnabled       bool          `env:"JOURNAL_ENABLED" envDefault:"true"`
	ReconcileAutoRetry   bool          `env:"RECONCILE_AUTO_RETRY" envDefault:"false"`
	CapturedGrace        time.Duration `env:"RECONCILE_CAPTURED_GRACE" envDefault:"5m"`
}
type LogConfig struct {
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
