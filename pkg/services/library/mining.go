package library

import (
	"context"
	"encoding/json"

	"github.com/ethersuite/ethereum-go-sdk/pkg/payloads"
)

// Mining covers the proof-of-work endpoints. Legacy on mainnet since
// the merge, still served by private and test chains.
type Mining interface {
	Mining(ctx context.Context) (json.RawMessage, error)
	Hashrate(ctx context.Context) (json.RawMessage, error)
	GetWork(ctx context.Context) (json.RawMessage, error)
	SubmitWork(ctx context.Context, nonce payloads.HexString8, seedHash payloads.HexString32, difficulty payloads.HexString32) (json.RawMessage, error)
	SubmitHashrate(ctx context.Context, hashrate payloads.HexString32, id payloads.HexString32) (json.RawMessage, error)
}
