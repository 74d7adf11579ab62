/*
Package client provides the bundled dispatchers: JSON-RPC over HTTP
POST and over a WebSocket connection. The services never depend on
either directly, only on the library.Dispatcher interface, so both can
be swapped for a caller-supplied request manager.
*/
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/ethersuite/ethereum-go-sdk/internal/common/core"
	"github.com/ethersuite/ethereum-go-sdk/internal/common/logger"
	"github.com/ethersuite/ethereum-go-sdk/pkg/config"
)

// Client is the HTTP dispatcher: one POST per request, responses
// correlated by request ID. Safe for concurrent use; the zero value is
// not usable, construct it with NewHTTP.
type Client struct {
	HttpClient *http.Client
	Endpoint   *url.URL
	AuthToken  string

	RetryMode    core.RetryMode
	RetryMaxTime time.Duration

	log *logger.Logger
}

func NewHTTP(cfg *config.Config, log *logger.Logger) (*Client, error) {
	endpoint, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, core.ErrFailedToParseURL.WithArgs(cfg.URL, err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		HttpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		Endpoint:     endpoint,
		AuthToken:    cfg.Token,
		RetryMode:    cfg.RetryMode,
		RetryMaxTime: cfg.RetryMaxTime,
		log:          log,
	}, nil
}

type rpcResponse struct {
	Jsonrpc string             `json:"jsonrpc"`
	ID      string             `json:"id"`
	Result  json.RawMessage    `json:"result"`
	Error   *core.JsonRpcError `json:"error"`
}

// Send implements library.Dispatcher. A JSON-RPC error object from the
// node is returned as a *core.JsonRpcError and never retried; only
// transport failures and 5xx responses are, and only in Backoff mode.
func (c *Client) Send(ctx context.Context, req core.Request) (json.RawMessage, error) {
	params := req.Params
	if params == nil {
		params = []any{}
	}

	payload := core.JsonRpcPayload{
		ID:      uuid.Must(uuid.NewV4()).String(),
		Jsonrpc: core.JsonRpcVersion,
		Method:  req.Method,
		Params:  params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, core.ErrFailedToMarshalRequest.WithArgs(req.Method, err)
	}

	if c.RetryMode != core.Backoff {
		result, err, _ := c.roundTrip(ctx, req.Method, body)
		return result, err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.RetryMaxTime

	var result json.RawMessage
	err = backoff.Retry(func() error {
		var retryable bool
		var err error
		result, err, retryable = c.roundTrip(ctx, req.Method, body)
		if err != nil {
			c.log.Warn("request attempt failed",
				zap.String("method", req.Method),
				zap.Bool("retryable", retryable),
				zap.Error(err))
			if !retryable {
				return backoff.Permanent(err)
			}
		}
		return err
	}, backoff.WithContext(policy, ctx))

	return result, err
}

// roundTrip performs one HTTP exchange. The retryable flag marks
// failures worth repeating: transport errors and 5xx responses.
func (c *Client) roundTrip(ctx context.Context, method string, body []byte) (json.RawMessage, error, bool) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, core.ErrFailedToDoRequest.WithArgs(method, err), false
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.AuthToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	resp, err := c.HttpClient.Do(httpReq)
	if err != nil {
		return nil, core.ErrFailedToDoRequest.WithArgs(method, err), true
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.ErrFailedToReadResponse.WithArgs(method, err), true
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, core.ErrUnexpectedStatus.WithArgs(resp.Status), resp.StatusCode >= 500
	}

	var parsed rpcResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, core.ErrFailedToDecodeResponse.WithArgs(method, err), false
	}
	if parsed.Error != nil {
		return nil, parsed.Error, false
	}

	return parsed.Result, nil, false
}
