// Package cli exposes the account service as the solwatch command line.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/gabapcia/solwatch/internal/accountwatch"
	"github.com/gabapcia/solwatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// errMissingAddress is returned when neither --address nor WALLET_ADDRESS is set.
var errMissingAddress = errors.New("missing address: use --address or set WALLET_ADDRESS")

// errRegistryNotConfigured is returned by the registry commands when no
// wallet registry was wired in.
var errRegistryNotConfigured = errors.New("wallet registry not configured: set SOLWATCH_REDIS_ADDR")

// Option customizes the CLI application.
type Option func(*app)

// WithRegistry enables the watch, unwatch and wallets commands and `sync --all`.
func WithRegistry(r walletregistry.Service) Option {
	return func(a *app) {
		a.registry = r
	}
}

// app holds the services the commands are built on.
type app struct {
	svc            accountwatch.Service
	registry       walletregistry.Service
	defaultAddress string
	out            io.Writer
}

// Run initializes and executes the solwatch CLI application.
//
// It registers all available commands:
//
//   - `account`: Prints the on-chain state of an address.
//   - `history`: Prints one page of normalized transactions.
//   - `sync`: Prints the transactions since the last sync and advances the checkpoint.
//   - `subscribe`: Streams account changes until interrupted.
//   - `watch`, `unwatch`, `wallets`: Manage the set of addresses synced by `sync --all`.
//
// defaultAddress is used by every command when --address is omitted.
// Command output goes to stdout as JSON.
func Run(ctx context.Context, svc accountwatch.Service, defaultAddress string, opts ...Option) error {
	return newApp(svc, defaultAddress, os.Stdout, opts...).Run(ctx, os.Args)
}

func newApp(svc accountwatch.Service, defaultAddress string, out io.Writer, opts ...Option) *cli.Command {
	a := &app{svc: svc, defaultAddress: defaultAddress, out: out}
	for _, opt := range opts {
		opt(a)
	}

	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "solwatch",
		Description:           "Command-line interface to inspect Solana accounts and their normalized transactions.",
		Usage:                 "solwatch [command] [flags]",
		Writer:                out,
		Commands: []*cli.Command{
			accountCommand(svc, defaultAddress, out),
			historyCommand(svc, defaultAddress, out),
			a.syncCommand(),
			subscribeCommand(svc, defaultAddress, out),
			a.watchCommand(),
			a.unwatchCommand(),
			a.walletsCommand(),
		},
	}
}

// addressFlag is shared by every command.
func addressFlag(defaultAddress string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "address",
		Aliases: []string{"a"},
		Usage:   "Solana account address (defaults to WALLET_ADDRESS)",
		Value:   defaultAddress,
	}
}

func addressFrom(c *cli.Command) (string, error) {
	address := c.String("address")
	if address == "" {
		return "", errMissingAddress
	}

	return address, nil
}

func (a *app) requireRegistry() error {
	if a.registry == nil {
		return errRegistryNotConfigured
	}

	return nil
}
