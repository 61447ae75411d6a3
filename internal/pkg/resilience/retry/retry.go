// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a simple interface with functional
// options for customizing retry behavior.
//
// Delays grow exponentially by default; WithBackoff(false) switches to a fixed delay.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/logger"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted,
	// or ctx is done.
	//
	// The operation should be idempotent. A nil return means one of the
	// attempts succeeded. Otherwise the returned error joins every attempt's
	// error (or only the last one, see WithLastErrorOnly), so errors.Is works
	// against any of them.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts, including the first one
	delay       time.Duration // base delay between attempts
	maxDelay    time.Duration // upper bound for the delay between attempts
	backoff     bool          // exponential (true) or fixed (false) delays
	lastErrOnly bool          // whether to return only the last error
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options.
//
// Default configuration:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - backoff:     true (exponential)
//   - lastErrOnly: false (every attempt error is returned)
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		backoff:     true,
		lastErrOnly: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// unrecoverableError marks an error that must not be retried.
type unrecoverableError struct {
	err error
}

func (e unrecoverableError) Error() string { return e.err.Error() }
func (e unrecoverableError) Unwrap() error { return e.err }

// Unrecoverable wraps err so Execute returns it without further attempts.
// errors.Is and errors.As still see through the wrapper.
func Unrecoverable(err error) error {
	if err == nil {
		return nil
	}
	return unrecoverableError{err: err}
}

// isRetryable stops retrying once the caller gave up or the operation
// flagged its error as unrecoverable.
func isRetryable(err error) bool {
	var unrecoverable unrecoverableError
	if errors.As(err, &unrecoverable) {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.FixedDelay
	if r.cfg.backoff {
		delayType = retry.BackOffDelay
	}

	err := retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(isRetryable),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn(ctx, "operation failed, retrying",
				"retry.attempt", n+1,
				"retry.max_attempts", r.cfg.attempts,
				"error", err,
			)
		}),
	)
	if err == nil {
		return nil
	}

	var retryErr retry.Error
	if errors.As(err, &retryErr) {
		return errors.Join(retryErr.WrappedErrors()...)
	}

	return err
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between retry attempts.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between retry attempts.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithBackoff selects exponential (true) or fixed (false) delays.
// Default: true.
func WithBackoff(b bool) Option {
	return func(c *config) {
		c.backoff = b
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// Default: false.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}
