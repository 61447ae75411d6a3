// Package walletregistry keeps the set of Solana addresses that `sync --all`
// walks through.
package walletregistry

import "context"

// Service defines the interface for registering and unregistering
// wallets that should be synced as a group.
//
// Implementations are responsible for validating input and delegating
// persistence to the configured WalletStorage.
type Service interface {
	// StartWatching registers a wallet address.
	//
	// Returns ErrWalletAlreadyRegistered when the address is already watched.
	StartWatching(ctx context.Context, address string) error

	// StopWatching unregisters a wallet address.
	//
	// Returns ErrWalletNotFound when the address was never watched.
	StopWatching(ctx context.Context, address string) error

	// WatchedWallets lists every registered address in lexical order.
	WatchedWallets(ctx context.Context) ([]string, error)
}

// service is the concrete implementation of the Service interface.
// It uses a WalletStorage backend to persist registered wallets.
type service struct {
	walletStorage WalletStorage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new instance of the walletregistry service using the
// provided WalletStorage implementation.
func New(ws WalletStorage) *service {
	return &service{
		walletStorage: ws,
	}
}
