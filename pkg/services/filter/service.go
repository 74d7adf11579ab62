package filter

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

func New(dispatcher library.Dispatcher, log *logger.Logger) library.Filter {
	return &Service{dispatcher: dispatcher, log: log}
}

func (s *Service) send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	s.log.Debug("dispatching request", zap.String("method", method))
	return s.dispatcher.Send(ctx, core.Request{Method: method, Params: params})
}

func (s *Service) NewFilter(ctx context.Context, f payloads.Filter) (json.RawMessage, error) {
	if err := validation.Filter("filter", f); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_newFilter", f)
}

func (s *Service) NewBlockFilter(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_newBlockFilter")
}

func (s *Service) NewPendingTransactionFilter(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_newPendingTransactionFilter")
}

func (s *Service) UninstallFilter(ctx context.Context, id payloads.Uint) (json.RawMessage, error) {
	if err := validation.Quantity("filterID", id); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_uninstallFilter", id)
}

func (s *Service) GetFilterChanges(ctx context.Context, id payloads.Uint) (json.RawMessage, error) {
	if err := validation.Quantity("filterID", id); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getFilterChanges", id)
}

func (s *Service) GetFilterLogs(ctx context.Context, id payloads.Uint) (json.RawMessage, error) {
	if err := validation.Quantity("filterID", id); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getFilterLogs", id)
}

func (s *Service) GetLogs(ctx context.Context, f payloads.Filter) (json.RawMessage, error) {
	if err := validation.Filter("filter", f); err != nil {
		return nil, err
	}
	return s.send(ctx, "eth_getLogs", f)
}
