package library

import (
	"context"
	"encoding/json"

	"github.com/ethersuite/ethereum-go-sdk/pkg/payloads"
)

// Chain covers block, uncle and transaction lookups. The hydrated flag
// on the block getters selects full transaction objects over hashes.
type Chain interface {
	GetBlockByHash(ctx context.Context, hash payloads.HexString32, hydrated bool) (json.RawMessage, error)
	GetBlockByNumber(ctx context.Context, block payloads.BlockNumberOrTag, hydrated bool) (json.RawMessage, error)
	GetBlockTransactionCountByHash(ctx context.Context, hash payloads.HexString32) (json.RawMessage, error)
	GetBlockTransactionCountByNumber(ctx context.Context, block payloads.BlockNumberOrTag) (json.RawMessage, error)
	GetUncleCountByBlockHash(ctx context.Context, hash payloads.HexString32) (json.RawMessage, error)
	GetUncleCountByBlockNumber(ctx context.Context, block payloads.BlockNumberOrTag) (json.RawMessage, error)
	GetUncleByBlockHashAndIndex(ctx context.Context, hash payloads.HexString32, index payloads.Uint) (json.RawMessage, error)
	GetUncleByBlockNumberAndIndex(ctx context.Context, block payloads.BlockNumberOrTag, index payloads.Uint) (json.RawMessage, error)
	GetTransactionByHash(ctx context.Context, hash payloads.HexString32) (json.RawMessage, error)
	GetTransactionByBlockHashAndIndex(ctx context.Context, hash payloads.HexString32, index payloads.Uint) (json.RawMessage, error)
	GetTransactionByBlockNumberAndIndex(ctx context.Context, block payloads.BlockNumberOrTag, index payloads.Uint) (json.RawMessage, error)
	GetTransactionReceipt(ctx context.Context, hash payloads.HexString32) (json.RawMessage, error)
}
