package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gabapcia/solwatch/internal/txnorm"

	"github.com/itchyny/gojq"
	"github.com/urfave/cli/v3"
)

// rawFlag and jqFlag build a new flag per command: flags keep their parsed value.
func rawFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "raw",
		Usage: "Include the raw RPC record of every transaction",
	}
}

func jqFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "jq",
		Usage: "jq filter applied to the JSON output, e.g. '.[] | select(.type == \"TRANSFER\")'",
	}
}

// compileFilter parses and compiles a jq expression. An empty expression
// yields a nil code.
func compileFilter(expr string) (*gojq.Code, error) {
	if expr == "" {
		return nil, nil
	}

	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parse jq filter %q: %w", expr, err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("compile jq filter %q: %w", expr, err)
	}

	return code, nil
}

// writeJSON prints v as indented JSON. With a filter, every value produced by
// the filter is printed instead.
func writeJSON(out io.Writer, v any, filter *gojq.Code) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if filter == nil {
		return enc.Encode(v)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return err
	}

	iter := filter.Run(input)
	for {
		result, ok := iter.Next()
		if !ok {
			return nil
		}

		if err, isErr := result.(error); isErr {
			return fmt.Errorf("run jq filter: %w", err)
		}

		if err := enc.Encode(result); err != nil {
			return err
		}
	}
}

// stripRaw drops the raw record of every transaction unless keep is set.
func stripRaw(txs []txnorm.Transaction, keep bool) []txnorm.Transaction {
	if keep {
		return txs
	}

	for i := range txs {
		txs[i].Raw = nil
	}

	return txs
}
