package txnorm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// ProcessBatch normalizes every record of raws concurrently and returns the
// accepted ones in input order. Rejected records are dropped (Normalize has
// already logged them). It never fails; an all-rejected batch yields an empty,
// non-nil slice.
func (n *Normalizer) ProcessBatch(ctx context.Context, raws []Raw) []Transaction {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "txnorm.ProcessBatch",
		trace.WithAttributes(attribute.Int("batch.size", len(raws))),
	)
	defer span.End()

	results := make([]*Transaction, len(raws))

	var g errgroup.Group
	if n.concurrency > 0 {
		g.SetLimit(n.concurrency)
	}

	for i, raw := range raws {
		g.Go(func() error {
			tx, err := n.Normalize(ctx, raw)
			if err == nil {
				results[i] = &tx
			}
			return nil
		})
	}
	_ = g.Wait()

	accepted := make([]Transaction, 0, len(raws))
	for _, tx := range results {
		if tx != nil {
			accepted = append(accepted, *tx)
		}
	}

	span.SetAttributes(attribute.Int("batch.accepted", len(accepted)))
	return accepted
}
