package solana

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/solwatch/internal/accountwatch"
)

type (
	// accountValue is the account object of getAccountInfo and accountNotification.
	accountValue struct {
		Data       json.RawMessage `json:"data"`
		Executable bool            `json:"executable"`
		Lamports   uint64          `json:"lamports"`
		Owner      string          `json:"owner"`
		RentEpoch  uint64          `json:"rentEpoch"`
		Space      uint64          `json:"space"`
	}

	// accountResult wraps an accountValue with the slot the node answered at.
	// Value is nil when the account does not exist.
	accountResult struct {
		Context struct {
			Slot uint64 `json:"slot"`
		} `json:"context"`
		Value *accountValue `json:"value"`
	}
)

// toAccountInfo converts the node's answer. It must only be called with a
// non-nil Value.
func (r accountResult) toAccountInfo(address string) accountwatch.AccountInfo {
	return accountwatch.AccountInfo{
		Address:    address,
		Slot:       r.Context.Slot,
		Lamports:   r.Value.Lamports,
		Owner:      r.Value.Owner,
		Executable: r.Value.Executable,
		RentEpoch:  r.Value.RentEpoch,
		Space:      r.Value.Space,
		Data:       r.Value.Data,
	}
}

// GetAccountInfo implements accountwatch.Blockchain. The account data is
// requested base58 encoded.
func (c *client) GetAccountInfo(ctx context.Context, address string) (accountwatch.AccountInfo, error) {
	data, err := c.conn.Fetch(ctx, "getAccountInfo", address, map[string]any{
		"encoding":   "base58",
		"commitment": c.commitment,
	})
	if err != nil {
		return accountwatch.AccountInfo{}, err
	}

	var result accountResult
	if err := json.Unmarshal(data, &result); err != nil {
		return accountwatch.AccountInfo{}, err
	}

	if result.Value == nil {
		return accountwatch.AccountInfo{}, accountwatch.ErrAccountNotFound
	}

	return result.toAccountInfo(address), nil
}
