package library

import (
	"context"
	"encoding/json"

	"github.com/ethersuite/ethereum-go-sdk/pkg/payloads"
)

// State covers account state queries at a given block position.
type State interface {
	GetBalance(ctx context.Context, address payloads.Address, block payloads.BlockNumberOrTag) (json.RawMessage, error)
	GetStorageAt(ctx context.Context, address payloads.Address, slot payloads.Uint256, block payloads.BlockNumberOrTag) (json.RawMessage, error)
	GetTransactionCount(ctx context.Context, address payloads.Address, block payloads.BlockNumberOrTag) (json.RawMessage, error)
	GetCode(ctx context.Context, address payloads.Address, block payloads.BlockNumberOrTag) (json.RawMessage, error)
	GetProof(ctx context.Context, address payloads.Address, storageKeys []payloads.HexString32, block payloads.BlockNumberOrTag) (json.RawMessage, error)
}
