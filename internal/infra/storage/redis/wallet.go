package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/solwatch/internal/walletregistry"
)

// walletStoragePrefix defines the base key prefix used for storing
// watched wallet addresses in Redis.
const walletStoragePrefix = "wallet"

// walletStorageKey returns the Redis set holding every watched address.
//
// Format: "wallet:storage:solana"
func walletStorageKey() string {
	return fmt.Sprintf("%s:storage:solana", walletStoragePrefix)
}

// RegisterWallet adds address to the watched set with SADD.
// A zero reply means the member already existed.
func (c *client) RegisterWallet(ctx context.Context, address string) error {
	added, err := c.conn.SAdd(ctx, walletStorageKey(), address).Result()
	if err != nil {
		return err
	}

	if added == 0 {
		return walletregistry.ErrWalletAlreadyRegistered
	}

	return nil
}

// UnregisterWallet removes address from the watched set with SREM.
func (c *client) UnregisterWallet(ctx context.Context, address string) error {
	removed, err := c.conn.SRem(ctx, walletStorageKey(), address).Result()
	if err != nil {
		return err
	}

	if removed == 0 {
		return walletregistry.ErrWalletNotFound
	}

	return nil
}

// ListWallets returns every member of the watched set.
func (c *client) ListWallets(ctx context.Context) ([]string, error) {
	return c.conn.SMembers(ctx, walletStorageKey()).Result()
}

var _ walletregistry.WalletStorage = new(client)
