package txnorm

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// LamportsPerSOL converts native base units to display units.
const LamportsPerSOL = 1_000_000_000

var errNotNumeric = errors.New("value is not numeric")

var lamportsPerSOL = decimal.NewFromInt(LamportsPerSOL)

// TokenAmount is the token-denominated part of a transaction. Both fields are
// nil when the transaction moved no tokens.
type TokenAmount struct {
	Amount *float64
	Mint   *string
}

// NativeAmount returns the SOL amount sent by the first account: the decrease
// of its balance minus the fee, or 0 when the balance did not decrease.
//
// Both meta.preBalances and meta.postBalances need at least two entries,
// otherwise the amount is 0. A non-numeric balance is an error.
func NativeAmount(raw Raw) (float64, error) {
	pre, _ := raw.List("meta", "preBalances")
	post, _ := raw.List("meta", "postBalances")
	if len(pre) < 2 || len(post) < 2 {
		return 0, nil
	}

	preBalance, err := toDecimal(pre[0])
	if err != nil {
		return 0, fmt.Errorf("preBalances[0]: %w", err)
	}

	postBalance, err := toDecimal(post[0])
	if err != nil {
		return 0, fmt.Errorf("postBalances[0]: %w", err)
	}

	diff := preBalance.Sub(postBalance).Div(lamportsPerSOL)
	if !diff.IsPositive() {
		return 0, nil
	}

	fee := decimal.Zero
	if v, ok := raw.Lookup("meta", "fee"); ok && v != nil {
		if fee, err = toDecimal(v); err != nil {
			return 0, fmt.Errorf("fee: %w", err)
		}
	}

	amount, _ := diff.Sub(fee.Div(lamportsPerSOL)).Float64()
	return amount, nil
}

// TokenDetails returns the amount and mint of the first post-transaction token
// balance. No token balances yield an empty TokenAmount.
//
// The amount is read from uiAmount, then uiTokenAmount.uiAmount, then
// uiTokenAmount.uiAmountString. Amount and mint are filled independently;
// only a first entry that is not an object is an error.
func TokenDetails(raw Raw) (TokenAmount, error) {
	balances, _ := raw.List("meta", "postTokenBalances")
	if len(balances) == 0 {
		return TokenAmount{}, nil
	}

	balance, ok := asObject(balances[0])
	if !ok {
		return TokenAmount{}, fmt.Errorf("postTokenBalances[0]: %w", ErrNotAnObject)
	}

	var token TokenAmount
	if mint, ok := balance.String("mint"); ok {
		token.Mint = &mint
	}

	amount, ok := balance.Float64("uiAmount")
	if !ok {
		amount, ok = balance.Float64("uiTokenAmount", "uiAmount")
	}
	if !ok {
		amount, ok = balance.Float64("uiTokenAmount", "uiAmountString")
	}
	if ok {
		token.Amount = &amount
	}

	return token, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		return decimal.NewFromString(n)
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	}

	if i, ok := toInt64(v); ok {
		return decimal.NewFromInt(i), nil
	}

	return decimal.Zero, fmt.Errorf("%w: %v", errNotNumeric, v)
}
