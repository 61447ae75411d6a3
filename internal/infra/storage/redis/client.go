// Package redis implements the accountwatch and walletregistry persistence ports on top of Redis.
//
// Keys written by this package:
//
//	accountwatch:checkpoint:<address>  newest synced signature, never expires
//	accountwatch:sync-lock:<address>   sync lock, expires after the lock TTL
//	wallet:storage:solana              set of addresses synced by `sync --all`
package redis

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// defaultPingTimeout bounds the connectivity check done by NewClient.
const defaultPingTimeout = 5 * time.Second

type client struct {
	conn *redis.Client
}

// Option customizes the connection opened by NewClient.
type Option func(*redis.Options)

// WithCredentials sets the ACL username and password.
func WithCredentials(username, password string) Option {
	return func(o *redis.Options) {
		o.Username = username
		o.Password = password
	}
}

// WithDB selects the logical database.
func WithDB(db int) Option {
	return func(o *redis.Options) {
		o.DB = db
	}
}

// NewClient connects to the Redis server at addr and pings it before
// returning. The connection is closed again when the ping fails.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	options := &redis.Options{Addr: addr}
	for _, opt := range opts {
		opt(options)
	}

	conn := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	if err := conn.Ping(pingCtx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return &client{
		conn: conn,
	}, nil
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}
