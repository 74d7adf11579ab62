package library

import (
	"context"
	"encoding/json"

	"github.com/ethersuite/ethereum-go-sdk/pkg/payloads"
)

// Filter covers server-side log filters and their polling endpoints.
// The filter ID returned by the installation calls is opaque to this
// layer; it is passed back as the hex quantity the node produced.
type Filter interface {
	NewFilter(ctx context.Context, filter payloads.Filter) (json.RawMessage, error)
	NewBlockFilter(ctx context.Context) (json.RawMessage, error)
	NewPendingTransactionFilter(ctx context.Context) (json.RawMessage, error)
	UninstallFilter(ctx context.Context, id payloads.Uint) (json.RawMessage, error)
	GetFilterChanges(ctx context.Context, id payloads.Uint) (json.RawMessage, error)
	GetFilterLogs(ctx context.Context, id payloads.Uint) (json.RawMessage, error)
	GetLogs(ctx context.Context, filter payloads.Filter) (json.RawMessage, error)
}
