package mining

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

func New(dispatcher library.Dispatcher, log *logger.Logger) library.Mining {
	return &Service{dispatcher: dispatcher, log: log}
}

func (s *Service) send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	s.log.Debug("dispatching request", zap.String("method", method))
	return s.dispatcher.Send(ctx, core.Request{Method: method, Params: params})
}

func (s *Service) Mining(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_mining")
}

func (s *Service) Hashrate(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_hashrate")
}

func (s *Service) GetWork(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_getWork")
}

// SubmitWork takes the solution in the order the node expects: the 8
// byte nonce, then the 32 byte seed hash, then the 32 byte boundary
// condition.
func (s *Service) SubmitWork(ctx context.Context, nonce payloads.HexString8, seedHash payloads.HexString32, difficulty payloads.HexString32) (json.RawMessage, error) {
	if err := validation.HexString8("nonce", nonce); err != nil {
		return nil, err
	}
	if err := validation.HexString32("seedHash", seedHash); err != nil {
		return nil, err
	}
	if err := validation.HexString32("difficulty", difficulty); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_submitWork", nonce, seedHash, difficulty)
}

func (s *Service) SubmitHashrate(ctx context.Context, hashrate payloads.HexString32, id payloads.HexString32) (json.RawMessage, error) {
	if err := validation.HexString32("hashrate", hashrate); err != nil {
		return nil, err
	}
	if err := validation.HexString32("id", id); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_submitHashrate", hashrate, id)
}
