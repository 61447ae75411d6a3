// Package config loads the solwatch settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every setting of the application. Optional integrations are
// disabled when their address is empty.
type Config struct {
	RPCURL        string `envconfig:"SOLANA_RPC_URL" required:"true" validate:"required,url"`
	WebSocketURL  string `envconfig:"SOLANA_WEBSOCKET_URL" validate:"omitempty,url"`
	WalletAddress string `envconfig:"WALLET_ADDRESS" validate:"omitempty,solana_address"`
	Commitment    string `envconfig:"SOLWATCH_COMMITMENT" default:"confirmed" validate:"oneof=confirmed finalized"`

	RetryAttempts uint          `envconfig:"SOLWATCH_RETRY_ATTEMPTS" default:"5" validate:"min=1"`
	RetryDelay    time.Duration `envconfig:"SOLWATCH_RETRY_DELAY" default:"2s"`
	RetryMaxDelay time.Duration `envconfig:"SOLWATCH_RETRY_MAX_DELAY" default:"30s" validate:"gtefield=RetryDelay"`
	RetryBackoff  bool          `envconfig:"SOLWATCH_RETRY_BACKOFF" default:"true"`

	HTTPTimeout time.Duration `envconfig:"SOLWATCH_HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
	HTTPRetries int           `envconfig:"SOLWATCH_HTTP_RETRIES" default:"2" validate:"min=0"`
	HTTPDebug   bool          `envconfig:"SOLWATCH_HTTP_DEBUG" default:"false"`

	PageLimit            int  `envconfig:"SOLWATCH_PAGE_LIMIT" default:"100" validate:"min=1,max=1000"`
	Hydrate              bool `envconfig:"SOLWATCH_HYDRATE" default:"true"`
	HydrationConcurrency int  `envconfig:"SOLWATCH_HYDRATION_CONCURRENCY" default:"8" validate:"min=1"`
	NormalizeConcurrency int  `envconfig:"SOLWATCH_NORMALIZE_CONCURRENCY" default:"0" validate:"min=0"`

	LogLevel string `envconfig:"SOLWATCH_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	RedisAddr     string        `envconfig:"SOLWATCH_REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string        `envconfig:"SOLWATCH_REDIS_USERNAME"`
	RedisPassword string        `envconfig:"SOLWATCH_REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"SOLWATCH_REDIS_DB" default:"0" validate:"min=0"`
	SyncLockTTL   time.Duration `envconfig:"SOLWATCH_SYNC_LOCK_TTL" default:"2m" validate:"gt=0"`

	NATSURL string `envconfig:"SOLWATCH_NATS_URL" validate:"omitempty,url"`

	TelemetryEnabled bool   `envconfig:"SOLWATCH_TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SOLWATCH_SERVICE_NAME" default:"solwatch" validate:"required"`
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
