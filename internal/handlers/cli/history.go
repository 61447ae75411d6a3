package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabapcia/solwatch/internal/accountwatch"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/txnorm"

	"github.com/urfave/cli/v3"
)

// historyCommand prints one page of normalized transactions, newest first.
//
// Usage example:
//
//	solwatch history --address 9WzD... --limit 20 --jq '.[] | select(.status == "failed")'
func historyCommand(svc accountwatch.Service, defaultAddress string, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Fetch and normalize one page of the account's transaction history.",
		Usage:       "Prints the normalized transactions as a JSON list, newest first.",
		Flags: []cli.Flag{
			addressFlag(defaultAddress),
			&cli.StringFlag{
				Name:  "before",
				Usage: "Only transactions older than this signature",
			},
			&cli.StringFlag{
				Name:  "until",
				Usage: "Stop at this signature (exclusive)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Page size, 1 to 1000 (defaults to the configured page limit)",
			},
			rawFlag(),
			jqFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := addressFrom(c)
			if err != nil {
				return err
			}

			filter, err := compileFilter(c.String("jq"))
			if err != nil {
				return err
			}

			txs, err := svc.TransactionHistory(ctx, address, accountwatch.HistoryOptions{
				Before: c.String("before"),
				Until:  c.String("until"),
				Limit:  int(c.Int("limit")),
			})
			if err != nil {
				return err
			}

			return writeJSON(out, stripRaw(txs, c.Bool("raw")), filter)
		},
	}
}

// syncCommand prints the transactions that appeared since the previous sync.
//
// Usage example:
//
//	solwatch sync --address 9WzD...
//	solwatch sync --all
//
// With --all every registered wallet is synced in turn and the output is an
// object keyed by address. Wallets locked by another run are skipped.
func (a *app) syncCommand() *cli.Command {
	return &cli.Command{
		Name:        "sync",
		Description: "Fetch every transaction since the last sync, publish them and move the checkpoint.",
		Usage:       "Prints the new normalized transactions as a JSON list, newest first.",
		Flags: []cli.Flag{
			addressFlag(a.defaultAddress),
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Sync every wallet registered with solwatch watch",
			},
			rawFlag(),
			jqFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			filter, err := compileFilter(c.String("jq"))
			if err != nil {
				return err
			}

			if c.Bool("all") {
				synced, err := a.syncAll(ctx, c.Bool("raw"))
				if err != nil {
					return err
				}

				return writeJSON(a.out, synced, filter)
			}

			address, err := addressFrom(c)
			if err != nil {
				return err
			}

			txs, err := a.svc.Sync(ctx, address)
			if err != nil {
				return err
			}

			return writeJSON(a.out, stripRaw(txs, c.Bool("raw")), filter)
		},
	}
}

func (a *app) syncAll(ctx context.Context, keepRaw bool) (map[string][]txnorm.Transaction, error) {
	if err := a.requireRegistry(); err != nil {
		return nil, err
	}

	wallets, err := a.registry.WatchedWallets(ctx)
	if err != nil {
		return nil, err
	}

	synced := make(map[string][]txnorm.Transaction, len(wallets))
	for _, address := range wallets {
		txs, err := a.svc.Sync(ctx, address)
		if errors.Is(err, accountwatch.ErrSyncInProgress) {
			logger.Warn(ctx, "skipping wallet with a sync in progress", "account.address", address)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("sync %s: %w", address, err)
		}

		synced[address] = stripRaw(txs, keepRaw)
	}

	return synced, nil
}
