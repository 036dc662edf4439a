package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"

	"casino-ledger/internal/model"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Gateway  GatewayConfig
	Betting  BettingConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	BaseURL         string        `env:"SERVER_BASE_URL" envDefault:"http://localhost:8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"casino"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD" envDefault:""`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	BalanceTTL time.Duration `env:"REDIS_BALANCE_TTL" envDefault:"30s"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL  time.Duration `env:"JWT_TOKEN_TTL" envDefault:"24h"`
}

// GatewayConfig is the SSLCommerz-style external payment contract. The
// signature input ordering is part of that contract; see gateway package.
type GatewayConfig struct {
	StoreID       string `env:"GATEWAY_STORE_ID" envDefault:"teststore"`
	StorePassword string `env:"GATEWAY_STORE_PASSWORD" envDefault:"testpass"`
	Sandbox       bool   `env:"GATEWAY_SANDBOX" envDefault:"true"`
	SandboxURL    string `env:"GATEWAY_SANDBOX_URL" envDefault:"https://sandbox.sslcommerz.com"`
	LiveURL       string `env:"GATEWAY_LIVE_URL" envDefault:"https://securepay.sslcommerz.com"`
}

func (g GatewayConfig) BaseURL() string {
	if g.Sandbox {
		return g.SandboxURL
	}
	return g.LiveURL
}

// BettingConfig carries the policy bounds for bets and deposits. Bounds
// are injected into the services at construction, never read from the
// environment inside business logic.
type BettingConfig struct {
	MinDeposit string `env:"MIN_DEPOSIT" envDefault:"10"`
	MaxDeposit string `env:"MAX_DEPOSIT" envDefault:"100000"`
}

type WorkerConfig struct {
	RetryInterval  time.Duration `env:"WORKER_RETRY_INTERVAL" envDefault:"3m"`
	RetryBatchSize int           `env:"WORKER_RETRY_BATCH_SIZE" envDefault:"10"`
}

// BetBounds is the min/max bet policy for one game type.
type BetBounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// BetLimits returns the per-game-type bet bounds. Figures follow the
// game catalog.
func BetLimits() map[model.GameType]BetBounds {
	return map[model.GameType]BetBounds{
		model.GameSlots:     {Min: decimal.RequireFromString("0.10"), Max: decimal.NewFromInt(1000)},
		model.GameBlackjack: {Min: decimal.NewFromInt(1), Max: decimal.NewFromInt(500)},
		model.GameRoulette:  {Min: decimal.RequireFromString("0.50"), Max: decimal.NewFromInt(1000)},
		model.GamePoker:     {Min: decimal.NewFromInt(2), Max: decimal.NewFromInt(1000)},
		model.GameBaccarat:  {Min: decimal.NewFromInt(5), Max: decimal.NewFromInt(2000)},
		model.GameDice:      {Min: decimal.RequireFromString("0.10"), Max: decimal.NewFromInt(500)},
		model.GameLottery:   {Min: decimal.NewFromInt(1), Max: decimal.NewFromInt(100)},
	}
}

// DepositBounds parses the configured deposit limits.
func (b BettingConfig) DepositBounds() (min, max decimal.Decimal, err error) {
	min, err = decimal.NewFromString(b.MinDeposit)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("parse MIN_DEPOSIT: %w", err)
	}
	max, err = decimal.NewFromString(b.MaxDeposit)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("parse MAX_DEPOSIT: %w", err)
	}
	return min, max, nil
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
