package accountwatch

import (
	"context"
	"fmt"

	"github.com/gabapcia/solwatch/internal/pkg/validator"
	"github.com/gabapcia/solwatch/internal/txnorm"

	"go.opentelemetry.io/otel/attribute"
)

// HistoryOptions narrows a TransactionHistory page.
type HistoryOptions struct {
	Before string `validate:"omitempty,len=88"`         // only transactions older than this signature
	Until  string `validate:"omitempty,len=88"`         // stop at this signature, exclusive
	Limit  int    `validate:"omitempty,min=1,max=1000"` // page size; 0 means the service default
}

// fetchPage loads one page of raw records through the retry policy.
func (s *service) fetchPage(ctx context.Context, address string, page SignaturePage) ([]txnorm.Raw, error) {
	var raws []txnorm.Raw
	err := s.execute(ctx, func() error {
		var err error
		raws, err = s.chain.GetSignaturesForAddress(ctx, address, page)
		return err
	})
	if err != nil {
		return nil, err
	}

	return raws, nil
}

// TransactionHistory implements Service.
func (s *service) TransactionHistory(ctx context.Context, address string, opts HistoryOptions) (txs []txnorm.Transaction, err error) {
	ctx, span := startSpan(ctx, "accountwatch.TransactionHistory", address)
	defer func() { endSpan(span, err) }()

	if err := validateAddress(address); err != nil {
		return nil, err
	}

	if err := validator.Validate(opts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHistoryOptions, err)
	}

	page := SignaturePage{
		Before: opts.Before,
		Until:  opts.Until,
		Limit:  opts.Limit,
	}
	if page.Limit == 0 {
		page.Limit = s.pageLimit
	}

	raws, err := s.fetchPage(ctx, address, page)
	if err != nil {
		return nil, err
	}

	txs = s.normalizer.ProcessBatch(ctx, raws)
	span.SetAttributes(
		attribute.Int("history.fetched", len(raws)),
		attribute.Int("history.normalized", len(txs)),
	)

	return txs, nil
}
