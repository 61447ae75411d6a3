package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/accountwatch"
)

// syncLockKey builds the key reserving Sync of an address:
//
//	"accountwatch:sync-lock:<address>"
func syncLockKey(address string) string {
	return fmt.Sprintf("%s:sync-lock:%s", accountwatchKeyPrefix, address)
}

// AcquireSync reserves the address with SET NX so only one process syncs it
// at a time. The reservation expires after ttl even if ReleaseSync never runs.
//
// Returns accountwatch.ErrSyncInProgress when the key already exists.
func (c *client) AcquireSync(ctx context.Context, address string, ttl time.Duration) error {
	ok, err := c.conn.SetNX(ctx, syncLockKey(address), "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return accountwatch.ErrSyncInProgress
	}

	return nil
}

// ReleaseSync drops the reservation taken by AcquireSync.
func (c *client) ReleaseSync(ctx context.Context, address string) error {
	return c.conn.Del(ctx, syncLockKey(address)).Err()
}

var _ accountwatch.SyncGuard = new(client)
