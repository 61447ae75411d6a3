// Package nats publishes normalized transactions to a NATS JetStream stream.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/accountwatch"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/txnorm"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	// StreamName is the JetStream stream holding every published transaction.
	StreamName = "SOLWATCH_TRANSACTIONS"

	// StreamRetention is how long the stream keeps messages.
	StreamRetention = 7 * 24 * time.Hour

	subjectPrefix = "solwatch.txns"

	// AccountHeader carries the synced address on every message.
	AccountHeader = "Solwatch-Account"

	// TypeHeader carries the transaction classification.
	TypeHeader = "Solwatch-Type"
)

// Subject returns the subject transactions of address are published to:
//
//	"solwatch.txns.<address>"
func Subject(address string) string {
	return fmt.Sprintf("%s.%s", subjectPrefix, address)
}

type jetStreamPublisher interface {
	PublishMsg(ctx context.Context, msg *nats.Msg, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

type publisher struct {
	conn *nats.Conn
	js   jetStreamPublisher
}

// Close drains pending publishes and closes the connection.
func (p *publisher) Close() error {
	if p.conn == nil {
		return nil
	}

	return p.conn.Drain()
}

// newMsg encodes tx without its raw payload. The signature is used as the
// JetStream message id so a retried Sync does not publish duplicates inside
// the stream's dedup window.
func newMsg(address string, tx txnorm.Transaction) (*nats.Msg, error) {
	tx.Raw = nil

	data, err := json.Marshal(tx)
	if err != nil {
		return nil, err
	}

	msg := nats.NewMsg(Subject(address))
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, tx.Signature)
	msg.Header.Set(AccountHeader, address)
	msg.Header.Set(TypeHeader, string(tx.Type))

	return msg, nil
}

// NotifyTransactions publishes txs in order and stops at the first failure,
// so the caller does not move its checkpoint past an unpublished transaction.
func (p *publisher) NotifyTransactions(ctx context.Context, address string, txs []txnorm.Transaction) error {
	for _, tx := range txs {
		msg, err := newMsg(address, tx)
		if err != nil {
			return fmt.Errorf("encode transaction %s: %w", tx.Signature, err)
		}

		ack, err := p.js.PublishMsg(ctx, msg)
		if err != nil {
			return fmt.Errorf("publish transaction %s: %w", tx.Signature, err)
		}

		if ack != nil && ack.Duplicate {
			logger.Debug(ctx, "transaction already published", "tx.signature", tx.Signature, "nats.subject", msg.Subject)
		}
	}

	logger.Debug(ctx, "transactions published", "account.address", address, "nats.subject", Subject(address), "count", len(txs))

	return nil
}

var _ accountwatch.TransactionNotifier = new(publisher)

// NewPublisher connects to url and makes sure the transaction stream exists.
func NewPublisher(ctx context.Context, url string) (*publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("solwatch"),
		nats.Timeout(10*time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Description: "Normalized Solana transactions",
		Subjects:    []string{subjectPrefix + ".*"},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      StreamRetention,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ensure stream %s: %w", StreamName, err)
	}

	logger.Info(ctx, "nats publisher ready", "nats.url", conn.ConnectedUrlRedacted(), "nats.stream", StreamName)

	return &publisher{
		conn: conn,
		js:   js,
	}, nil
}
