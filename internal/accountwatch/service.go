// Package accountwatch reads the state and transaction history of Solana
// accounts, normalizes the transactions and keeps per-address sync cursors.
package accountwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/solwatch/internal/pkg/validator"
	"github.com/gabapcia/solwatch/internal/txnorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/solwatch/internal/accountwatch"

const (
	// DefaultPageLimit is the number of signatures requested per page.
	DefaultPageLimit = 100

	// MaxPageLimit is the largest page the RPC API accepts.
	MaxPageLimit = 1000

	accountUpdateChannelBufferSize = 10
)

var (
	// ErrInvalidAddress is returned when an address is not a base58 public key.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidHistoryOptions is returned when HistoryOptions fail validation.
	ErrInvalidHistoryOptions = errors.New("invalid history options")
)

// Service is the account-facing API used by the handlers.
type Service interface {
	// AccountInfo returns the current state of address.
	AccountInfo(ctx context.Context, address string) (AccountInfo, error)

	// TransactionHistory returns one page of normalized transactions of
	// address, newest first.
	TransactionHistory(ctx context.Context, address string, opts HistoryOptions) ([]txnorm.Transaction, error)

	// Sync returns the transactions of address that appeared since the last
	// sync, notifies them and advances the checkpoint.
	Sync(ctx context.Context, address string) ([]txnorm.Transaction, error)

	// Watch streams account changes of address until ctx is canceled.
	Watch(ctx context.Context, address string) (<-chan AccountUpdate, error)
}

type service struct {
	chain      Blockchain
	normalizer TransactionNormalizer

	checkpointStorage CheckpointStorage
	notifier          TransactionNotifier
	syncGuard         SyncGuard
	syncLockTTL       time.Duration

	retry     retry.Retry
	pageLimit int
}

var _ Service = (*service)(nil)

// execute runs op through the configured retry policy, or once without one.
func (s *service) execute(ctx context.Context, op func() error) error {
	if s.retry == nil {
		return op()
	}
	return s.retry.Execute(ctx, op)
}

func validateAddress(address string) error {
	if err := validator.Var(address, "required,solana_address"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return nil
}

func startSpan(ctx context.Context, name, address string) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name,
		trace.WithAttributes(attribute.String("account.address", address)),
	)
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// AccountInfo implements Service.
func (s *service) AccountInfo(ctx context.Context, address string) (info AccountInfo, err error) {
	ctx, span := startSpan(ctx, "accountwatch.AccountInfo", address)
	defer func() { endSpan(span, err) }()

	if err := validateAddress(address); err != nil {
		return AccountInfo{}, err
	}

	err = s.execute(ctx, func() error {
		var fetchErr error
		info, fetchErr = s.chain.GetAccountInfo(ctx, address)
		if errors.Is(fetchErr, ErrAccountNotFound) {
			return retry.Unrecoverable(fetchErr)
		}
		return fetchErr
	})
	if err != nil {
		return AccountInfo{}, err
	}

	return info, nil
}

type config struct {
	retry             retry.Retry
	normalizer        TransactionNormalizer
	checkpointStorage CheckpointStorage
	notifier          TransactionNotifier
	syncGuard         SyncGuard
	syncLockTTL       time.Duration
	pageLimit         int
}

// Option configures the service built by New.
type Option func(*config)

// New builds the Service on top of chain. Without options it makes a single
// attempt per RPC call, normalizes with txnorm defaults, keeps no checkpoint,
// takes no sync lock and notifies nobody.
func New(chain Blockchain, opts ...Option) *service {
	cfg := config{
		retry:             nil,
		normalizer:        txnorm.New(),
		checkpointStorage: nopCheckpoint{},
		notifier:          nopNotifier{},
		syncGuard:         nopSyncGuard{},
		syncLockTTL:       DefaultSyncLockTTL,
		pageLimit:         DefaultPageLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chain:             chain,
		normalizer:        cfg.normalizer,
		checkpointStorage: cfg.checkpointStorage,
		notifier:          cfg.notifier,
		syncGuard:         cfg.syncGuard,
		syncLockTTL:       cfg.syncLockTTL,
		retry:             cfg.retry,
		pageLimit:         cfg.pageLimit,
	}
}

// WithRetry retries every RPC call with r.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithNormalizer replaces the default txnorm.Normalizer.
func WithNormalizer(n TransactionNormalizer) Option {
	return func(c *config) {
		c.normalizer = n
	}
}

// WithCheckpointStorage persists Sync cursors in cs.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithTransactionNotifier delivers synced transactions to n.
func WithTransactionNotifier(n TransactionNotifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithSyncGuard locks every Sync through g, holding the lock for at most ttl.
func WithSyncGuard(g SyncGuard, ttl time.Duration) Option {
	return func(c *config) {
		c.syncGuard = g
		if ttl > 0 {
			c.syncLockTTL = ttl
		}
	}
}

// WithPageLimit sets the default page size, clamped to [1, MaxPageLimit].
func WithPageLimit(limit int) Option {
	return func(c *config) {
		c.pageLimit = min(max(limit, 1), MaxPageLimit)
	}
}
