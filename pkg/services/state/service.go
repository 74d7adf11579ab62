package state

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

func New(dispatcher library.Dispatcher, log *logger.Logger) library.State {
	return &Service{dispatcher: dispatcher, log: log}
}

func (s *Service) send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	s.log.Debug("dispatching request", zap.String("method", method))
	return s.dispatcher.Send(ctx, core.Request{Method: method, Params: params})
}

func (s *Service) GetBalance(ctx context.Context, address payloads.Address, block payloads.BlockNumberOrTag) (json.RawMessage, error) {
	if err := validation.Address("address", address); err != nil {
		return nil, err
	}
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getBalance", address, block)
}

func (s *Service) GetStorageAt(ctx context.Context, address payloads.Address, slot payloads.Uint256, block payloads.BlockNumberOrTag) (json.RawMessage, error) {
	if err := validation.Address("address", address); err != nil {
		return nil, err
	}
	if err := validation.Quantity256("storageSlot", slot); err != nil {
		return nil, err
	}
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getStorageAt", address, slot, block)
}

func (s *Service) GetTransactionCount(ctx context.Context, address payloads.Address, block payloads.BlockNumberOrTag) (json.RawMessage, error) {
	if err := validation.Address("address", address); err != nil {
		return nil, err
	}
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getTransactionCount", address, block)
}

func (s *Service) GetCode(ctx context.Context, address payloads.Address, block payloads.BlockNumberOrTag) (json.RawMessage, error) {
	if err := validation.Address("address", address); err != nil {
		return nil, err
	}
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getCode", address, block)
}

// GetProof validates the storage key list element-wise; an empty list
// is a valid request for a pure account proof.
func (s *Service) GetProof(ctx context.Context, address payloads.Address, storageKeys []payloads.HexString32, block payloads.BlockNumberOrTag) (json.RawMessage, error) {
	if err := validation.Address("address", address); err != nil {
		return nil, err
	}
	if err := validation.StorageKeys("storageKeys", storageKeys); err != nil {
		return nil, err
	}
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getProof", address, storageKeys, block)
}
