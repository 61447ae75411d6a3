package accountwatch

import (
	"context"

	"github.com/gabapcia/solwatch/internal/txnorm"
)

// TransactionNotifier receives the transactions found by Sync.
type TransactionNotifier interface {
	// NotifyTransactions delivers txs, newest first, for address. A returned
	// error aborts the sync before the checkpoint moves, so the same
	// transactions are offered again on the next run.
	NotifyTransactions(ctx context.Context, address string, txs []txnorm.Transaction) error
}

// nopNotifier discards every notification.
type nopNotifier struct{}

var _ TransactionNotifier = nopNotifier{}

func (nopNotifier) NotifyTransactions(context.Context, string, []txnorm.Transaction) error {
	return nil
}
