package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"
	wsstream "github.com/sourcegraph/jsonrpc2/websocket"

	"github.com/ethersuite/ethereum-go-sdk/internal/common/core"
	"github.com/ethersuite/ethereum-go-sdk/internal/common/logger"
	"github.com/ethersuite/ethereum-go-sdk/pkg/config"
)

// WebSocket is the dispatcher for ws:// and wss:// endpoints. It keeps
// one connection open and multiplexes concurrent calls over it; the
// jsonrpc2 connection handles request ID correlation.
type WebSocket struct {
	conn *jsonrpc2.Conn
	log  *logger.Logger
}

// noopHandler drops server-initiated messages. Subscription
// notifications are out of scope for this SDK.
type noopHandler struct{}

func (noopHandler) Handle(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) {}

func NewWebSocket(ctx context.Context, cfg *config.Config, log *logger.Logger) (*WebSocket, error) {
	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: cfg.Timeout,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		},
	}

	header := http.Header{}
	if cfg.Token != "" {
		header.Set("Authorization", "Bearer "+cfg.Token)
	}

	ws, _, err := dialer.DialContext(ctx, cfg.URL, header)
	if err != nil {
		return nil, core.ErrFailedToDialNode.WithArgs(cfg.URL, err)
	}

	return &WebSocket{
		conn: jsonrpc2.NewConn(ctx, wsstream.NewObjectStream(ws), noopHandler{}),
		log:  log,
	}, nil
}

// Send implements library.Dispatcher. Errors from the connection,
// including *jsonrpc2.Error responses from the node, pass through
// unchanged.
func (w *WebSocket) Send(ctx context.Context, req core.Request) (json.RawMessage, error) {
	params := req.Params
	if params == nil {
		params = []any{}
	}

	var result json.RawMessage
	if err := w.conn.Call(ctx, req.Method, params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (w *WebSocket) Close() error {
	return w.conn.Close()
}
