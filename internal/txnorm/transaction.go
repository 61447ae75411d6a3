// Package txnorm turns loosely-typed Solana transaction records into
// canonical, classified Transaction values.
//
// A record is rejected only when its signature is missing or malformed, or
// when classification hits a logic fault; every other defect degrades the
// affected field to its default. Rejections never escape ProcessBatch: the
// offending item is logged, counted and dropped while the rest of the batch
// goes on.
package txnorm

import (
	"errors"
)

// SignatureLength is the length of a base58-encoded transaction signature.
const SignatureLength = 88

var (
	// ErrMissingSignature is returned when a record carries no signature at all.
	ErrMissingSignature = errors.New("missing transaction signature")

	// ErrInvalidSignatureFormat is returned when the signature is not an 88-character string.
	ErrInvalidSignatureFormat = errors.New("invalid signature format")

	// ErrClassificationFailed wraps any fault raised while classifying a record.
	ErrClassificationFailed = errors.New("classification failed")
)

// Type is the classified kind of a transaction.
type Type string

const (
	TypeTransfer      Type = "TRANSFER"
	TypeTokenTransfer Type = "TOKEN_TRANSFER"
	TypeNFTTransfer   Type = "NFT_TRANSFER"
	TypeNFTSale       Type = "NFT_SALE"
	TypeNFTMint       Type = "NFT_MINT"
	TypeUnknown       Type = "UNKNOWN"
)

// Status is the execution outcome of a transaction.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Transaction is the canonical form of a raw record.
//
// Values are built once by the Normalizer and handed out by value; the
// pointer fields are never shared with the Raw record.
type Transaction struct {
	Signature string   `json:"signature"`
	Slot      uint64   `json:"slot"`
	BlockTime int64    `json:"blockTime"`
	Type      Type     `json:"type"`
	Status    Status   `json:"status"`
	Sender    string   `json:"sender"`
	Receiver  string   `json:"receiver"`
	Amount    *float64 `json:"amount,omitempty"`
	Mint      *string  `json:"mint,omitempty"`
	ProgramID string   `json:"programId"`
	Fee       uint64   `json:"fee"`
	Raw       Raw      `json:"raw,omitempty"`
}

// Details is the outcome of classifying a record.
type Details struct {
	Type      Type
	Amount    *float64
	Mint      *string
	ProgramID string
}
