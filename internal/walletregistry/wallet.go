package walletregistry

import (
	"context"
	"errors"
	"slices"

	"github.com/gabapcia/solwatch/internal/pkg/validator"
)

var (
	// ErrWalletAlreadyRegistered is returned when registering an address twice.
	ErrWalletAlreadyRegistered = errors.New("wallet already registered")

	// ErrWalletNotFound is returned when unregistering an unknown address.
	ErrWalletNotFound = errors.New("wallet not found")
)

// walletIdentifier holds the address being registered so it can be validated.
type walletIdentifier struct {
	Address string `validate:"required,solana_address"`
}

// WalletStorage defines the persistence interface for the watched set.
type WalletStorage interface {
	// RegisterWallet adds the address to the watched set.
	//
	// Returns ErrWalletAlreadyRegistered if the address is already a member.
	RegisterWallet(ctx context.Context, address string) error

	// UnregisterWallet removes the address from the watched set.
	//
	// Returns ErrWalletNotFound if the address is not a member.
	UnregisterWallet(ctx context.Context, address string) error

	// ListWallets returns every member of the watched set, in no particular order.
	ListWallets(ctx context.Context) ([]string, error)
}

func validateAddress(address string) error {
	return validator.Validate(walletIdentifier{Address: address})
}

// StartWatching validates the address and persists it using WalletStorage.
func (s *service) StartWatching(ctx context.Context, address string) error {
	if err := validateAddress(address); err != nil {
		return err
	}

	return s.walletStorage.RegisterWallet(ctx, address)
}

// StopWatching validates the address and removes it using WalletStorage.
func (s *service) StopWatching(ctx context.Context, address string) error {
	if err := validateAddress(address); err != nil {
		return err
	}

	return s.walletStorage.UnregisterWallet(ctx, address)
}

// WatchedWallets returns the registered addresses sorted so output is stable.
func (s *service) WatchedWallets(ctx context.Context) ([]string, error) {
	addresses, err := s.walletStorage.ListWallets(ctx)
	if err != nil {
		return nil, err
	}

	slices.Sort(addresses)
	return addresses, nil
}
