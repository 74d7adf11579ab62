package txn

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

func New(dispatcher library.Dispatcher, log *logger.Logger) library.Txn {
	return &Service{dispatcher: dispatcher, log: log}
}

func (s *Service) send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	s.log.Debug("dispatching request", zap.String("method", method))
	return s.dispatcher.Send(ctx, core.Request{Method: method, Params: params})
}

func (s *Service) Sign(ctx context.Context, address payloads.Address, message payloads.HexBytes) (json.RawMessage, error) {
	if err := validation.Address("address", address); err != nil {
		return nil, err
	}
	if err := validation.HexString("message", message); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_sign", address, message)
}

func (s *Service) SignTransaction(ctx context.Context, tx payloads.TransactionWithSender) (json.RawMessage, error) {
	if err := validation.TransactionWithSender("transaction", tx); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_signTransaction", tx)
}

func (s *Service) SendTransaction(ctx context.Context, tx payloads.TransactionWithSender) (json.RawMessage, error) {
	if err := validation.TransactionWithSender("transaction", tx); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_sendTransaction", tx)
}

func (s *Service) SendRawTransaction(ctx context.Context, raw payloads.HexBytes) (json.RawMessage, error) {
	if err := validation.HexString("transaction", raw); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_sendRawTransaction", raw)
}

func (s *Service) Call(ctx context.Context, tx payloads.TransactionCall, block payloads.BlockNumberOrTag) (json.RawMessage, error) {
	if err := validation.TransactionCall("transaction", tx); err != nil {
		return nil, err
	}
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_call", tx, block)
}

// EstimateGas sends the transaction unvalidated. Nodes accept
// structurally incomplete objects here and substitute defaults, and
// rejecting locally would make estimation stricter than execution.
func (s *Service) EstimateGas(ctx context.Context, tx payloads.TransactionCall) (json.RawMessage, error) {
	return s.send(ctx, "eth_estimateGas", tx)
}
