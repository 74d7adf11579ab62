package chain

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

func New(dispatcher library.Dispatcher, log *logger.Logger) library.Chain {
	return &Service{dispatcher: dispatcher, log: log}
}

func (s *Service) send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	s.log.Debug("dispatching request", zap.String("method", method))
	return s.dispatcher.Send(ctx, core.Request{Method: method, Params: params})
}

func (s *Service) GetBlockByHash(ctx context.Context, hash payloads.HexString32, hydrated bool) (json.RawMessage, error) {
	if err := validation.HexString32("blockHash", hash); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getBlockByHash", hash, hydrated)
}

func (s *Service) GetBlockByNumber(ctx context.Context, block payloads.BlockNumberOrTag, hydrated bool) (json.RawMessage, error) {
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getBlockByNumber", block, hydrated)
}

func (s *Service) GetBlockTransactionCountByHash(ctx context.Context, hash payloads.HexString32) (json.RawMessage, error) {
	if err := validation.HexString32("blockHash", hash); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getBlockTransactionCountByHash", hash)
}

func (s *Service) GetBlockTransactionCountByNumber(ctx context.Context, block payloads.BlockNumberOrTag) (json.RawMessage, error) {
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getBlockTransactionCountByNumber", block)
}

func (s *Service) GetUncleCountByBlockHash(ctx context.Context, hash payloads.HexString32) (json.RawMessage, error) {
	if err := validation.HexString32("blockHash", hash); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getUncleCountByBlockHash", hash)
}

func (s *Service) GetUncleCountByBlockNumber(ctx context.Context, block payloads.BlockNumberOrTag) (json.RawMessage, error) {
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getUncleCountByBlockNumber", block)
}

func (s *Service) GetUncleByBlockHashAndIndex(ctx context.Context, hash payloads.HexString32, index payloads.Uint) (json.RawMessage, error) {
	if err := validation.HexString32("blockHash", hash); err != nil {
		return nil, err
	}
	if err := validation.Quantity("uncleIndex", index); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getUncleByBlockHashAndIndex", hash, index)
}

func (s *Service) GetUncleByBlockNumberAndIndex(ctx context.Context, block payloads.BlockNumberOrTag, index payloads.Uint) (json.RawMessage, error) {
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	if err := validation.Quantity("uncleIndex", index); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getUncleByBlockNumberAndIndex", block, index)
}

func (s *Service) GetTransactionByHash(ctx context.Context, hash payloads.HexString32) (json.RawMessage, error) {
	if err := validation.HexString32("transactionHash", hash); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getTransactionByHash", hash)
}

func (s *Service) GetTransactionByBlockHashAndIndex(ctx context.Context, hash payloads.HexString32, index payloads.Uint) (json.RawMessage, error) {
	if err := validation.HexString32("blockHash", hash); err != nil {
		return nil, err
	}
	if err := validation.Quantity("transactionIndex", index); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getTransactionByBlockHashAndIndex", hash, index)
}

func (s *Service) GetTransactionByBlockNumberAndIndex(ctx context.Context, block payloads.BlockNumberOrTag, index payloads.Uint) (json.RawMessage, error) {
	if err := validation.BlockNumberOrTag("blockNumber", block); err != nil {
		return nil, err
	}
	if err := validation.Quantity("transactionIndex", index); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getTransactionByBlockNumberAndIndex", block, index)
}

func (s *Service) GetTransactionReceipt(ctx context.Context, hash payloads.HexString32) (json.RawMessage, error) {
	if err := validation.HexString32("transactionHash", hash); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getTransactionReceipt", hash)
}
