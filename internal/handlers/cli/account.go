package cli

import (
	"context"
	"io"

	"github.com/gabapcia/solwatch/internal/accountwatch"

	"github.com/urfave/cli/v3"
)

// accountCommand prints the current state of an address.
//
// Usage example:
//
//	solwatch account --address 9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM
func accountCommand(svc accountwatch.Service, defaultAddress string, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "account",
		Description: "Fetch the on-chain state of an account.",
		Usage:       "Prints balance, owner and data of the account as JSON.",
		Flags:       []cli.Flag{addressFlag(defaultAddress), jqFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := addressFrom(c)
			if err != nil {
				return err
			}

			filter, err := compileFilter(c.String("jq"))
			if err != nil {
				return err
			}

			info, err := svc.AccountInfo(ctx, address)
			if err != nil {
				return err
			}

			return writeJSON(out, info, filter)
		},
	}
}
