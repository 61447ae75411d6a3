package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// watchCommand registers an address for `sync --all`.
//
// Usage example:
//
//	solwatch watch --address 9WzD...
func (a *app) watchCommand() *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register an address so `sync --all` includes it.",
		Usage:       "Adds the address to the wallet registry.",
		Flags:       []cli.Flag{addressFlag(a.defaultAddress)},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := a.requireRegistry(); err != nil {
				return err
			}

			address, err := addressFrom(c)
			if err != nil {
				return err
			}

			if err := a.registry.StartWatching(ctx, address); err != nil {
				return err
			}

			_, err = fmt.Fprintf(a.out, "watching %s\n", address)
			return err
		},
	}
}

// unwatchCommand removes an address from the registry.
func (a *app) unwatchCommand() *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Remove an address from the wallet registry.",
		Usage:       "Stops including the address in `sync --all`.",
		Flags:       []cli.Flag{addressFlag(a.defaultAddress)},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := a.requireRegistry(); err != nil {
				return err
			}

			address, err := addressFrom(c)
			if err != nil {
				return err
			}

			if err := a.registry.StopWatching(ctx, address); err != nil {
				return err
			}

			_, err = fmt.Fprintf(a.out, "stopped watching %s\n", address)
			return err
		},
	}
}

// walletsCommand prints the registered addresses as a JSON list.
func (a *app) walletsCommand() *cli.Command {
	return &cli.Command{
		Name:        "wallets",
		Description: "List the addresses registered with `solwatch watch`.",
		Usage:       "Prints the registered addresses as a JSON list.",
		Flags:       []cli.Flag{jqFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := a.requireRegistry(); err != nil {
				return err
			}

			filter, err := compileFilter(c.String("jq"))
			if err != nil {
				return err
			}

			wallets, err := a.registry.WatchedWallets(ctx)
			if err != nil {
				return err
			}

			return writeJSON(a.out, wallets, filter)
		},
	}
}
