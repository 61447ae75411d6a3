// Command solwatch inspects Solana accounts and prints their transactions in
// a normalized, classified form.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/solwatch/internal/accountwatch"
	"github.com/gabapcia/solwatch/internal/config"
	"github.com/gabapcia/solwatch/internal/handlers/cli"
	"github.com/gabapcia/solwatch/internal/infra/blockchain/solana"
	"github.com/gabapcia/solwatch/internal/infra/messaging/nats"
	"github.com/gabapcia/solwatch/internal/infra/storage/redis"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/solwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/solwatch/internal/pkg/transport/http"
	"github.com/gabapcia/solwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/solwatch/internal/txnorm"
	"github.com/gabapcia/solwatch/internal/walletregistry"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "solwatch:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn(ctx, "failed to shut down telemetry", "error", err)
			}
		}()
	}

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.HTTPTimeout),
		transporthttp.WithRetryMax(cfg.HTTPRetries),
		transporthttp.WithRequestLogging(cfg.HTTPDebug),
	)

	chainOpts := []solana.Option{
		solana.WithCommitment(cfg.Commitment),
		solana.WithWebSocketURL(cfg.WebSocketURL),
	}
	if cfg.Hydrate {
		chainOpts = append(chainOpts, solana.WithHydration(cfg.HydrationConcurrency))
	}
	chain := solana.NewClient(jsonrpc.NewClient(httpClient.StandardClient(), cfg.RPCURL), chainOpts...)

	svcOpts := []accountwatch.Option{
		accountwatch.WithNormalizer(txnorm.New(txnorm.WithConcurrency(cfg.NormalizeConcurrency))),
		accountwatch.WithPageLimit(cfg.PageLimit),
		accountwatch.WithRetry(retry.New(
			retry.WithAttempts(cfg.RetryAttempts),
			retry.WithDelay(cfg.RetryDelay),
			retry.WithMaxDelay(cfg.RetryMaxDelay),
			retry.WithBackoff(cfg.RetryBackoff),
		)),
	}

	var cliOpts []cli.Option
	if cfg.RedisAddr != "" {
		store, err := redis.NewClient(ctx, cfg.RedisAddr,
			redis.WithCredentials(cfg.RedisUsername, cfg.RedisPassword),
			redis.WithDB(cfg.RedisDB),
		)
		if err != nil {
			return err
		}
		defer store.Close()

		svcOpts = append(svcOpts,
			accountwatch.WithCheckpointStorage(store),
			accountwatch.WithSyncGuard(store, cfg.SyncLockTTL),
		)
		cliOpts = append(cliOpts, cli.WithRegistry(walletregistry.New(store)))
	}

	if cfg.NATSURL != "" {
		publisher, err := nats.NewPublisher(ctx, cfg.NATSURL)
		if err != nil {
			return err
		}
		defer publisher.Close()

		svcOpts = append(svcOpts, accountwatch.WithTransactionNotifier(publisher))
	}

	return cli.Run(ctx, accountwatch.New(chain, svcOpts...), cfg.WalletAddress, cliOpts...)
}
