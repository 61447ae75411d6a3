package cli

import (
	"context"
	"encoding/json"
	"io"
	"os/signal"
	"syscall"

	"github.com/gabapcia/solwatch/internal/accountwatch"

	"github.com/urfave/cli/v3"
)

// subscribeCommand streams account changes, one JSON document per line.
//
// Usage example:
//
//	solwatch subscribe --address 9WzD...
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func subscribeCommand(svc accountwatch.Service, defaultAddress string, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "subscribe",
		Description: "Subscribe to changes of an account over the node's WebSocket.",
		Usage:       "Prints every account update as a JSON line. Terminates gracefully on Ctrl+C or termination signals.",
		Flags:       []cli.Flag{addressFlag(defaultAddress)},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := addressFrom(c)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			updates, err := svc.Watch(ctx, address)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(out)
			for update := range updates {
				if update.Err != nil {
					return update.Err
				}

				if err := enc.Encode(update); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
