// Package solana implements accountwatch.Blockchain on top of a Solana RPC
// node: JSON-RPC over HTTP for reads and a WebSocket for account
// subscriptions.
package solana

import (
	"errors"
	"time"

	"github.com/gabapcia/solwatch/internal/accountwatch"
	"github.com/gabapcia/solwatch/internal/pkg/transport/jsonrpc"

	"github.com/gorilla/websocket"
)

const (
	// DefaultCommitment is the commitment level used for RPC reads.
	DefaultCommitment = "confirmed"

	// SubscriptionCommitment is the commitment level of account subscriptions.
	SubscriptionCommitment = "finalized"

	// DefaultHydrationConcurrency bounds the parallel getTransaction calls of one page.
	DefaultHydrationConcurrency = 8

	// DefaultPingInterval is how often a subscription connection is pinged.
	DefaultPingInterval = 30 * time.Second

	handshakeTimeout = 10 * time.Second
	writeTimeout     = 10 * time.Second
	pongWait         = 10 * time.Second
)

// ErrWebSocketNotConfigured is returned by SubscribeAccount when the client
// was built without a WebSocket endpoint.
var ErrWebSocketNotConfigured = errors.New("websocket endpoint not configured")

type config struct {
	commitment           string
	hydrate              bool
	hydrationConcurrency int
	wsURL                string
	pingInterval         time.Duration
}

// Option configures the client.
type Option func(*config)

// WithCommitment sets the commitment level of RPC reads.
func WithCommitment(commitment string) Option {
	return func(c *config) {
		if commitment != "" {
			c.commitment = commitment
		}
	}
}

// WithHydration expands every listed signature into its full transaction
// with getTransaction, running at most concurrency calls at once.
func WithHydration(concurrency int) Option {
	return func(c *config) {
		c.hydrate = true
		if concurrency > 0 {
			c.hydrationConcurrency = concurrency
		}
	}
}

// WithWebSocketURL sets the endpoint used by SubscribeAccount.
func WithWebSocketURL(url string) Option {
	return func(c *config) {
		c.wsURL = url
	}
}

// WithPingInterval overrides DefaultPingInterval.
func WithPingInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.pingInterval = d
		}
	}
}

// client talks to a Solana node. Reads go through conn; subscriptions open
// one WebSocket connection each.
type client struct {
	conn   jsonrpc.Client
	dialer *websocket.Dialer

	commitment           string
	hydrate              bool
	hydrationConcurrency int
	wsURL                string
	pingInterval         time.Duration
}

var _ accountwatch.Blockchain = (*client)(nil)

// NewClient builds a Solana client over the given JSON-RPC connection.
// Without options it reads at DefaultCommitment, returns signature listings
// as they are and cannot subscribe.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		commitment:           DefaultCommitment,
		hydrationConcurrency: DefaultHydrationConcurrency,
		pingInterval:         DefaultPingInterval,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:                 conn,
		dialer:               &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		commitment:           cfg.commitment,
		hydrate:              cfg.hydrate,
		hydrationConcurrency: cfg.hydrationConcurrency,
		wsURL:                cfg.wsURL,
		pingInterval:         cfg.pingInterval,
	}
}
