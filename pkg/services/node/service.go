package node

import (
	"context"
	"encoding/json"

	"github.com/ethersuite/ethereum-go-sdk/internal/common/core"
	"github.com/ethersuite/ethereum-go-sdk/internal/common/logger"
	"github.com/ethersuite/ethereum-go-sdk/pkg/payloads"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/library"
	"github.com/ethersuite/ethereum-go-sdk/pkg/validation"
	"go.uber.org/zap"
)

type Service struct {
	dispatcher library.Dispatcher
	log        *logger.Logger
}

func New(dispatcher library.Dispatcher, log *logger.Logger) library.Node {
	return &Service{dispatcher: dispatcher, log: log}
}

// send builds the envelope and delegates. Params stays a non-nil slice
// so empty parameter lists serialize as [].
func (s *Service) send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	s.log.Debug("dispatching request", zap.String("method", method))
	return s.dispatcher.Send(ctx, core.Request{Method: method, Params: params})
}

func (s *Service) ProtocolVersion(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_protocolVersion")
}

func (s *Service) Syncing(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_syncing")
}

func (s *Service) Coinbase(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_coinbase")
}

func (s *Service) ChainID(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_chainId")
}

func (s *Service) ClientVersion(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "web3_clientVersion")
}

func (s *Service) Accounts(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_accounts")
}

func (s *Service) RequestAccounts(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_requestAccounts")
}

func (s *Service) GasPrice(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_gasPrice")
}

func (s *Service) BlockNumber(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_blockNumber")
}

func (s *Service) PendingTransactions(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_pendingTransactions")
}

// FeeHistory accepts fractional reward percentiles, so the integer
// requirement of the percentile validator is switched off here.
func (s *Service) FeeHistory(
	ctx context.Context,
	blockCount payloads.Uint,
	newestBlock payloads.BlockNumberOrTag,
	rewardPercentiles []float64,
) (json.RawMessage, error) {
	if err := validation.Quantity("blockCount", blockCount); err != nil {
		return nil, err
	}
	if err := validation.BlockNumberOrTag("newestBlock", newestBlock); err != nil {
		return nil, err
	}
	if err := validation.Percentiles("rewardPercentiles", rewardPercentiles, false); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_feeHistory", blockCount, newestBlock, rewardPercentiles)
}
