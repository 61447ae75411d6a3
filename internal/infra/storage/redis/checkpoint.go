package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/solwatch/internal/accountwatch"

	"github.com/redis/go-redis/v9"
)

// accountwatchKeyPrefix is the namespace of every key written by this package.
const accountwatchKeyPrefix = "accountwatch"

// checkpointKey builds the key holding the newest synced signature of an address:
//
//	"accountwatch:checkpoint:<address>"
func checkpointKey(address string) string {
	return fmt.Sprintf("%s:checkpoint:%s", accountwatchKeyPrefix, address)
}

// SaveCheckpoint stores signature as the newest synced transaction of address.
// The key never expires.
func (c *client) SaveCheckpoint(ctx context.Context, address, signature string) error {
	return c.conn.Set(ctx, checkpointKey(address), signature, 0).Err()
}

// LoadLatestCheckpoint returns the stored checkpoint of address, or
// accountwatch.ErrNoCheckpointFound when the address was never synced.
func (c *client) LoadLatestCheckpoint(ctx context.Context, address string) (string, error) {
	val, err := c.conn.Get(ctx, checkpointKey(address)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = accountwatch.ErrNoCheckpointFound
		}

		return "", err
	}

	return val, nil
}

var _ accountwatch.CheckpointStorage = new(client)
