package accountwatch

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gabapcia/solwatch/internal/txnorm"
)

// ErrAccountNotFound is returned when the RPC node knows no account at the address.
var ErrAccountNotFound = errors.New("account not found")

// AccountInfo is the on-chain state of an account.
type AccountInfo struct {
	Address    string          `json:"address"`
	Slot       uint64          `json:"slot"`       // slot the node answered at
	Lamports   uint64          `json:"lamports"`   // balance in native base units
	Owner      string          `json:"owner"`      // program that owns the account
	Executable bool            `json:"executable"` // whether the account holds a program
	RentEpoch  uint64          `json:"rentEpoch"`
	Space      uint64          `json:"space"`
	Data       json.RawMessage `json:"data"` // payload as sent by the node: [data, encoding] or a parsed object
}

// SignaturePage selects one page of an address' signature history, newest first.
type SignaturePage struct {
	Before string // start strictly before this signature ("" = newest)
	Until  string // stop at this signature, exclusive ("" = no lower bound)
	Limit  int    // maximum number of entries
}

// AccountEvent is emitted by Blockchain.SubscribeAccount for every change
// notification, or with Err set when the subscription broke.
type AccountEvent struct {
	Account AccountInfo
	Err     error
}

// Blockchain is the upstream source of account and transaction data.
type Blockchain interface {
	// GetAccountInfo returns the current state of address, or
	// ErrAccountNotFound when it does not exist.
	GetAccountInfo(ctx context.Context, address string) (AccountInfo, error)

	// GetSignaturesForAddress returns one page of raw transaction records
	// that involve address, newest first. The records are handed to the
	// normalizer untouched.
	GetSignaturesForAddress(ctx context.Context, address string, page SignaturePage) ([]txnorm.Raw, error)

	// SubscribeAccount streams change notifications for address until ctx
	// is canceled or the connection fails. The channel is closed in both
	// cases; a failure is reported as a last event with Err set.
	SubscribeAccount(ctx context.Context, address string) (<-chan AccountEvent, error)
}

// TransactionNormalizer turns raw records into canonical transactions.
// *txnorm.Normalizer is the production implementation.
type TransactionNormalizer interface {
	ProcessBatch(ctx context.Context, raws []txnorm.Raw) []txnorm.Transaction
}

var _ TransactionNormalizer = (*txnorm.Normalizer)(nil)
