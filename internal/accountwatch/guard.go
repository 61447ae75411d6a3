package accountwatch

import (
	"context"
	"errors"
	"time"
)

// DefaultSyncLockTTL bounds how long a crashed Sync can keep an address locked.
const DefaultSyncLockTTL = 2 * time.Minute

// ErrSyncInProgress is returned by Sync when another process holds the
// address' sync lock.
var ErrSyncInProgress = errors.New("sync already in progress for address")

// SyncGuard serializes Sync runs for the same address across processes.
type SyncGuard interface {
	// AcquireSync claims the sync lock of address for at most ttl. It returns
	// ErrSyncInProgress when somebody else holds it.
	AcquireSync(ctx context.Context, address string, ttl time.Duration) error

	// ReleaseSync gives the lock back before its ttl expires.
	ReleaseSync(ctx context.Context, address string) error
}

// nopSyncGuard grants every claim. It is the default for single-process use.
type nopSyncGuard struct{}

var _ SyncGuard = nopSyncGuard{}

func (nopSyncGuard) AcquireSync(context.Context, string, time.Duration) error {
	return nil
}

func (nopSyncGuard) ReleaseSync(context.Context, string) error {
	return nil
}
