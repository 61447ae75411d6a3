package solana

import (
	"context"

	"github.com/gabapcia/solwatch/internal/accountwatch"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/txnorm"

	"golang.org/x/sync/errgroup"
)

// signaturesConfig builds the configuration object of getSignaturesForAddress.
// Empty cursors and a zero limit are left to the node's defaults.
func (c *client) signaturesConfig(page accountwatch.SignaturePage) map[string]any {
	cfg := map[string]any{"commitment": c.commitment}

	if page.Before != "" {
		cfg["before"] = page.Before
	}

	if page.Until != "" {
		cfg["until"] = page.Until
	}

	if page.Limit > 0 {
		cfg["limit"] = page.Limit
	}

	return cfg
}

// GetSignaturesForAddress implements accountwatch.Blockchain.
//
// With hydration enabled every listed signature is replaced by its full
// getTransaction record, with the listing fields copied on top of it.
func (c *client) GetSignaturesForAddress(ctx context.Context, address string, page accountwatch.SignaturePage) ([]txnorm.Raw, error) {
	data, err := c.conn.Fetch(ctx, "getSignaturesForAddress", address, c.signaturesConfig(page))
	if err != nil {
		return nil, err
	}

	raws := txnorm.ParseBatch(data)
	if !c.hydrate || len(raws) == 0 {
		return raws, nil
	}

	return c.hydrateAll(ctx, raws)
}

// hydrateAll expands raws in place. A record that cannot be expanded is kept
// as listed.
func (c *client) hydrateAll(ctx context.Context, raws []txnorm.Raw) ([]txnorm.Raw, error) {
	var g errgroup.Group
	g.SetLimit(c.hydrationConcurrency)

	for i, listed := range raws {
		signature, ok := listed.String("signature")
		if !ok || signature == "" {
			continue
		}

		g.Go(func() error {
			full, err := c.getTransaction(ctx, signature)
			if err != nil {
				logger.Warn(ctx, "failed to hydrate transaction, keeping listing record",
					"tx.signature", signature,
					"error", err,
				)
				return nil
			}

			for key, value := range listed {
				full[key] = value
			}

			raws[i] = full
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return raws, nil
}

// getTransaction fetches the jsonParsed record of signature.
func (c *client) getTransaction(ctx context.Context, signature string) (txnorm.Raw, error) {
	data, err := c.conn.Fetch(ctx, "getTransaction", signature, map[string]any{
		"encoding":                       "jsonParsed",
		"maxSupportedTransactionVersion": 0,
		"commitment":                     c.commitment,
	})
	if err != nil {
		return nil, err
	}

	return txnorm.ParseRaw(data)
}
