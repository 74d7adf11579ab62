package library

import (
	"context"
	"encoding/json"

	"github.com/ethersuite/ethereum-go-sdk/pkg/payloads"
)

// Txn covers signing, submission and simulation of transactions.
//
// EstimateGas deliberately takes its transaction without validation:
// nodes accept structurally incomplete objects there and fill in the
// rest, so the relaxed contract is part of the method's surface.
type Txn interface {
	Sign(ctx context.Context, address payloads.Address, message payloads.HexBytes) (json.RawMessage, error)
	SignTransaction(ctx context.Context, tx payloads.TransactionWithSender) (json.RawMessage, error)
	SendTransaction(ctx context.Context, tx payloads.TransactionWithSender) (json.RawMessage, error)
	SendRawTransaction(ctx context.Context, raw payloads.HexBytes) (json.RawMessage, error)
	Call(ctx context.Context, tx payloads.TransactionCall, block payloads.BlockNumberOrTag) (json.RawMessage, error)
	EstimateGas(ctx context.Context, tx payloads.TransactionCall) (json.RawMessage, error)
}
