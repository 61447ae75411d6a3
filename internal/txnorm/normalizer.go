package txnorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
)

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock replaces the clock used for the blockTime fallback.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// WithRules puts rules in front of the default table, so they take
// precedence over the built-in rule for the same program id.
func WithRules(rules ...Rule) Option {
	return func(n *Normalizer) {
		n.rules = append(append([]Rule(nil), rules...), n.rules...)
	}
}

// WithConcurrency bounds how many records ProcessBatch normalizes at once.
// Zero or less means unbounded.
func WithConcurrency(limit int) Option {
	return func(n *Normalizer) {
		n.concurrency = limit
	}
}

// Normalizer validates raw records and reshapes them into Transactions.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	rules       []Rule
	classifier  *Classifier
	now         func() time.Time
	concurrency int
}

// New returns a Normalizer using DefaultRules, the system clock and
// unbounded batch concurrency, adjusted by opts.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		rules: DefaultRules(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}

	n.classifier = NewClassifier(n.rules...)
	return n
}

// Normalize turns raw into a Transaction.
//
// It returns ErrMissingSignature or ErrInvalidSignatureFormat when the
// signature cannot be trusted and ErrClassificationFailed (wrapping the
// cause) when classification fails. Every other field falls back to its
// default: slot and fee 0, blockTime the current time, sender and receiver "".
// Rejections are logged at warn level together with the raw payload.
func (n *Normalizer) Normalize(ctx context.Context, raw Raw) (Transaction, error) {
	signature, err := extractSignature(raw)
	if err != nil {
		reason := reasonInvalidSignature
		if errors.Is(err, ErrMissingSignature) {
			reason = reasonMissingSignature
		}
		return Transaction{}, n.reject(ctx, raw, reason, err)
	}

	details, err := n.classifier.Classify(ctx, raw)
	if err != nil {
		return Transaction{}, n.reject(ctx, raw, reasonClassificationError, fmt.Errorf("%w: %w", ErrClassificationFailed, err))
	}

	tx := Transaction{
		Signature: signature,
		Slot:      uint64Or(raw, 0, "slot"),
		BlockTime: n.blockTime(raw),
		Type:      details.Type,
		Status:    status(raw),
		Sender:    accountKey(raw, 0),
		Receiver:  accountKey(raw, 1),
		Amount:    details.Amount,
		Mint:      details.Mint,
		ProgramID: details.ProgramID,
		Fee:       uint64Or(raw, 0, "meta", "fee"),
		Raw:       raw,
	}

	logger.Debug(ctx, "transaction normalized", "signature", tx.Signature, "type", tx.Type)
	recordNormalized(ctx, tx.Type)

	return tx, nil
}

func (n *Normalizer) reject(ctx context.Context, raw Raw, reason string, err error) error {
	logger.Warn(ctx, "transaction rejected",
		"reason", reason,
		"error", err,
		"raw", raw,
	)
	recordRejected(ctx, reason)
	return err
}

// extractSignature prefers the top-level `signature` and falls back to
// transaction.signatures[0]. Null and empty strings count as absent.
func extractSignature(raw Raw) (string, error) {
	v, ok := raw.Lookup("signature")
	if !ok || isBlank(v) {
		v, ok = raw.Lookup("transaction", "signatures", 0)
	}
	if !ok || isBlank(v) {
		return "", ErrMissingSignature
	}

	signature, ok := v.(string)
	if !ok || len(signature) != SignatureLength {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignatureFormat, v)
	}

	return signature, nil
}

func isBlank(v any) bool {
	s, isString := v.(string)
	return v == nil || (isString && s == "")
}

// blockTime falls back to the clock only when the field is absent or null.
func (n *Normalizer) blockTime(raw Raw) int64 {
	if t, ok := raw.Int64("blockTime"); ok {
		return t
	}
	return n.now().Unix()
}

// status is failed when meta.err is set. Signature listings carry no meta,
// only a top-level err, which is honoured in that case.
func status(raw Raw) Status {
	failed := raw.Has("meta", "err")
	if _, hasMeta := raw.Object("meta"); !hasMeta {
		failed = raw.Has("err")
	}

	if failed {
		return StatusFailed
	}
	return StatusSuccess
}

func uint64Or(raw Raw, fallback uint64, path ...any) uint64 {
	if v, ok := raw.Uint64(path...); ok {
		return v
	}
	return fallback
}
