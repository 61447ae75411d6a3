package accountwatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/types"
	"github.com/gabapcia/solwatch/internal/txnorm"

	"go.opentelemetry.io/otel/attribute"
)

// collectSince pages backwards from the newest signature until checkpoint is
// reached (exclusive) or history runs out. Without a checkpoint only the
// newest page is read. Records are de-duplicated by signature and keep the
// newest-first order of the node.
func (s *service) collectSince(ctx context.Context, address, checkpoint string) ([]txnorm.Raw, error) {
	var (
		collected []txnorm.Raw
		seen      = types.NewSet[string]()
		before    string
	)

	for {
		page, err := s.fetchPage(ctx, address, SignaturePage{
			Before: before,
			Until:  checkpoint,
			Limit:  s.pageLimit,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range page {
			signature, _ := raw.String("signature")
			if signature != "" && !seen.AddIfAbsent(signature) {
				continue
			}
			collected = append(collected, raw)
		}

		if checkpoint == "" || len(page) < s.pageLimit {
			return collected, nil
		}

		oldest, _ := page[len(page)-1].String("signature")
		if oldest == "" || oldest == before {
			return collected, nil
		}
		before = oldest
	}
}

// Sync implements Service.
//
// Runs for the same address are serialized by the SyncGuard. The checkpoint
// only moves after the notifier accepted the transactions, and only when at
// least one transaction was accepted by the normalizer.
func (s *service) Sync(ctx context.Context, address string) (txs []txnorm.Transaction, err error) {
	ctx, span := startSpan(ctx, "accountwatch.Sync", address)
	defer func() { endSpan(span, err) }()

	if err := validateAddress(address); err != nil {
		return nil, err
	}

	if err := s.syncGuard.AcquireSync(ctx, address, s.syncLockTTL); err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := s.syncGuard.ReleaseSync(ctx, address); releaseErr != nil {
			logger.Warn(ctx, "failed to release sync lock", "account.address", address, "error", releaseErr)
		}
	}()

	checkpoint, err := s.checkpointStorage.LoadLatestCheckpoint(ctx, address)
	if err != nil && !errors.Is(err, ErrNoCheckpointFound) {
		return nil, fmt.Errorf("load checkpoint: %w", err)
	}

	raws, err := s.collectSince(ctx, address, checkpoint)
	if err != nil {
		return nil, err
	}

	txs = s.normalizer.ProcessBatch(ctx, raws)
	span.SetAttributes(
		attribute.String("sync.checkpoint", checkpoint),
		attribute.Int("sync.fetched", len(raws)),
		attribute.Int("sync.normalized", len(txs)),
	)

	if len(txs) == 0 {
		return txs, nil
	}

	if err := s.notifier.NotifyTransactions(ctx, address, txs); err != nil {
		return nil, fmt.Errorf("notify transactions: %w", err)
	}

	newest := txs[0].Signature
	if err := s.checkpointStorage.SaveCheckpoint(ctx, address, newest); err != nil {
		return nil, fmt.Errorf("save checkpoint: %w", err)
	}

	logger.Info(ctx, "account synced",
		"account.address", address,
		"sync.previous_checkpoint", checkpoint,
		"sync.checkpoint", newest,
		"sync.transactions", len(txs),
	)

	return txs, nil
}
