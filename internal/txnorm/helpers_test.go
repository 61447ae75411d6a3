package txnorm

import (
	"fmt"
	"strings"
)

// sig returns a distinct, well-formed 88-character signature.
func sig(i int) string {
	return strings.Repeat("5", SignatureLength-8) + fmt.Sprintf("%08d", i)
}

// rawTx builds a record with the given signature, primary program and meta.
func rawTx(signature string, accountKeys []any, meta map[string]any) Raw {
	raw := Raw{
		"signature": signature,
		"transaction": map[string]any{
			"message": map[string]any{
				"accountKeys": accountKeys,
			},
		},
	}
	if meta != nil {
		raw["meta"] = meta
	}
	return raw
}

func ptr[T any](v T) *T {
	return &v
}
