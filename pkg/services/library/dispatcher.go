package library

import (
	"context"
	"encoding/json"

	"github.com/ethersuite/ethereum-go-sdk/internal/common/core"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/dispatcher.go . Dispatcher

// Dispatcher transmits a method-name + ordered-parameter envelope and
// returns the node's raw result. It owns connection state, request ID
// correlation and response parsing; the services above it never look at
// the returned bytes. Implementations must be safe for concurrent use.
type Dispatcher interface {
	Send(ctx context.Context, req core.Request) (json.RawMessage, error)
}
