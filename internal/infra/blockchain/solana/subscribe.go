package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/accountwatch"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/transport/jsonrpc"

	"github.com/gorilla/websocket"
)

const (
	subscribeRequestID = 1

	accountEventsBufferSize = 10
)

// ErrUnexpectedSubscribeResponse is returned when the node answers the
// subscription request with something other than a subscription id.
var ErrUnexpectedSubscribeResponse = errors.New("unexpected subscribe response")

type (
	wsRequest struct {
		JSONRPC string `json:"jsonrpc"`
		ID      int    `json:"id"`
		Method  string `json:"method"`
		Params  []any  `json:"params"`
	}

	wsRPCError struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	// wsMessage is any frame sent by the node: a response to our request
	// (ID set) or a notification (Method set).
	wsMessage struct {
		ID     *int            `json:"id"`
		Result json.RawMessage `json:"result"`
		Error  *wsRPCError     `json:"error"`
		Method string          `json:"method"`
		Params *struct {
			Subscription uint64        `json:"subscription"`
			Result       accountResult `json:"result"`
		} `json:"params"`
	}
)

// readTimeout is how long a subscription may stay silent, pongs included.
func (c *client) readTimeout() time.Duration {
	return c.pingInterval + pongWait
}

// subscribe sends accountSubscribe and waits for the subscription id.
func (c *client) subscribe(conn *websocket.Conn, address string) (uint64, error) {
	req := wsRequest{
		JSONRPC: "2.0",
		ID:      subscribeRequestID,
		Method:  "accountSubscribe",
		Params: []any{
			address,
			map[string]any{
				"encoding":   "jsonParsed",
				"commitment": SubscriptionCommitment,
			},
		},
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(req); err != nil {
		return 0, fmt.Errorf("write subscribe request: %w", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(c.readTimeout()))
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return 0, fmt.Errorf("read subscribe response: %w", err)
		}

		if msg.ID == nil || *msg.ID != subscribeRequestID {
			continue
		}

		if msg.Error != nil {
			return 0, fmt.Errorf("%w: [%d] - %s", jsonrpc.ErrProviderReturnedError, msg.Error.Code, msg.Error.Message)
		}

		var subscriptionID uint64
		if err := json.Unmarshal(msg.Result, &subscriptionID); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrUnexpectedSubscribeResponse, msg.Result)
		}

		return subscriptionID, nil
	}
}

// SubscribeAccount implements accountwatch.Blockchain.
//
// The connection is dialed and the subscription confirmed before returning,
// so setup failures are reported to the caller. Afterwards the connection is
// pinged every ping interval and closed when ctx is canceled.
func (c *client) SubscribeAccount(ctx context.Context, address string) (<-chan accountwatch.AccountEvent, error) {
	if c.wsURL == "" {
		return nil, ErrWebSocketNotConfigured
	}

	conn, _, err := c.dialer.DialContext(ctx, c.wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial websocket: %w", err)
	}

	logger.Info(ctx, "websocket connection established", "account.address", address)

	subscriptionID, err := c.subscribe(conn, address)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	logger.Info(ctx, "account subscription confirmed", "account.address", address, "subscription.id", subscriptionID)

	events := make(chan accountwatch.AccountEvent, accountEventsBufferSize)
	done := make(chan struct{})

	go c.keepAlive(ctx, conn, done)
	go c.readNotifications(ctx, conn, address, subscriptionID, events, done)

	return events, nil
}

// keepAlive pings conn until done is closed, and closes conn when ctx is
// canceled so that the reader unblocks.
func (c *client) keepAlive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeTimeout),
			)
			_ = conn.Close()
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				logger.Warn(ctx, "failed to ping websocket", "error", err)
				continue
			}
			logger.Debug(ctx, "websocket ping sent")
		}
	}
}

// readNotifications forwards accountNotification frames of subscriptionID to
// events until the connection ends. A failure not caused by ctx is sent as a
// last event.
func (c *client) readNotifications(
	ctx context.Context,
	conn *websocket.Conn,
	address string,
	subscriptionID uint64,
	events chan<- accountwatch.AccountEvent,
	done chan<- struct{},
) {
	defer close(events)
	defer close(done)
	defer conn.Close()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(c.readTimeout()))
	})

	for {
		_ = conn.SetReadDeadline(time.Now().Add(c.readTimeout()))

		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				logger.Info(ctx, "websocket connection closed", "account.address", address)
				return
			}

			select {
			case events <- accountwatch.AccountEvent{Err: fmt.Errorf("read websocket: %w", err)}:
			case <-ctx.Done():
			}
			return
		}

		var msg wsMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			logger.Error(ctx, "failed to parse websocket message", "error", err)
			continue
		}

		if msg.Method != "accountNotification" || msg.Params == nil || msg.Params.Subscription != subscriptionID {
			logger.Debug(ctx, "ignoring websocket message", "message", string(payload))
			continue
		}

		if msg.Params.Result.Value == nil {
			logger.Warn(ctx, "account notification without value", "account.address", address)
			continue
		}

		select {
		case events <- accountwatch.AccountEvent{Account: msg.Params.Result.toAccountInfo(address)}:
		case <-ctx.Done():
			return
		}
	}
}
