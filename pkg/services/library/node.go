package library

import (
	"context"
	"encoding/json"

	"github.com/ethersuite/ethereum-go-sdk/pkg/payloads"
)

// Node covers the node-level queries: identity, sync state, accounts
// and fee data. Every method returns the dispatcher's raw result;
// decoding is up to the caller.
type Node interface {
	ProtocolVersion(ctx context.Context) (json.RawMessage, error)
	Syncing(ctx context.Context) (json.RawMessage, error)
	Coinbase(ctx context.Context) (json.RawMessage, error)
	ChainID(ctx context.Context) (json.RawMessage, error)
	ClientVersion(ctx context.Context) (json.RawMessage, error)
	Accounts(ctx context.Context) (json.RawMessage, error)
	RequestAccounts(ctx context.Context) (json.RawMessage, error)
	GasPrice(ctx context.Context) (json.RawMessage, error)
	BlockNumber(ctx context.Context) (json.RawMessage, error)
	PendingTransactions(ctx context.Context) (json.RawMessage, error)
	FeeHistory(
		ctx context.Context,
		blockCount payloads.Uint,
		newestBlock payloads.BlockNumberOrTag,
		rewardPercentiles []float64,
	) (json.RawMessage, error)
}
