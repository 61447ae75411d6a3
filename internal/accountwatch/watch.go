package accountwatch

import (
	"context"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/x/chflow"
)

// AccountUpdate is one change of a watched account. Err is set, and Account
// empty, when the subscription failed; the channel is closed right after.
type AccountUpdate struct {
	Address string      `json:"address"`
	Account AccountInfo `json:"account"`
	Err     error       `json:"-"`
}

// Watch implements Service. The returned channel is closed when ctx is
// canceled or the upstream subscription ends.
func (s *service) Watch(ctx context.Context, address string) (<-chan AccountUpdate, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	ctx = logger.Derive(ctx, "account.address", address)

	var events <-chan AccountEvent
	err := s.execute(ctx, func() error {
		var err error
		events, err = s.chain.SubscribeAccount(ctx, address)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "account subscription started")

	return chflow.Map(ctx, events, accountUpdateChannelBufferSize, func(event AccountEvent) AccountUpdate {
		if event.Err != nil {
			logger.Error(ctx, "account subscription failed", "error", event.Err)
			return AccountUpdate{Address: address, Err: event.Err}
		}

		logger.Debug(ctx, "account changed",
			"account.slot", event.Account.Slot,
			"account.lamports", event.Account.Lamports,
		)
		return AccountUpdate{Address: address, Account: event.Account}
	}), nil
}
