package accountwatch

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no checkpoint
// has been saved yet for the requested address.
var ErrNoCheckpointFound = errors.New("no checkpoint found for address")

// CheckpointStorage persists and retrieves, per address, the signature of the
// newest transaction already synced.
type CheckpointStorage interface {
	// SaveCheckpoint records signature as the latest synced transaction for
	// address, overwriting any previous checkpoint.
	//
	// ctx controls cancellation and deadlines for any underlying I/O.
	SaveCheckpoint(ctx context.Context, address, signature string) error

	// LoadLatestCheckpoint returns the most recent signature saved for
	// address, or ErrNoCheckpointFound if there is none.
	//
	// ctx controls cancellation and deadlines for any underlying I/O.
	LoadLatestCheckpoint(ctx context.Context, address string) (string, error)
}

// nopCheckpoint is a no-op implementation of CheckpointStorage.
// It performs no persistence and always returns ErrNoCheckpointFound
// when loading checkpoints.
type nopCheckpoint struct{}

var _ CheckpointStorage = nopCheckpoint{}

// SaveCheckpoint is a no-op.
func (nopCheckpoint) SaveCheckpoint(context.Context, string, string) error {
	return nil
}

// LoadLatestCheckpoint always returns ErrNoCheckpointFound, as no state is persisted.
func (nopCheckpoint) LoadLatestCheckpoint(context.Context, string) (string, error) {
	return "", ErrNoCheckpointFound
}
