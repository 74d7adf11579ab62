package compile

import (
	"context"
	"encoding/json"

	"github.com/ethersuite/ethereum-go-sdk/internal/common/core"
	"github.com/ethersuite/ethereum-go-sdk/internal/common/logger"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/library"
	"go.uber.org/zap"
)

// The compilation endpoints take free-form source code; there is no
// wire format to check, so these calls delegate straight away.

type Service struct {
	dispatcher library.Dispatcher
	log        *logger.Logger
}

func New(dispatcher library.Dispatcher, log *logger.Logger) library.Compile {
	return &Service{dispatcher: dispatcher, log: log}
}

func (s *Service) send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	s.log.Debug("dispatching request", zap.String("method", method))
	return s.dispatcher.Send(ctx, core.Request{Method: method, Params: params})
}

func (s *Service) GetCompilers(ctx context.Context) (json.RawMessage, error) {
	return s.send(ctx, "eth_getCompilers")
}

func (s *Service) CompileSolidity(ctx context.Context, source string) (json.RawMessage, error) {
	return s.send(ctx, "eth_compileSolidity", source)
}

func (s *Service) CompileLLL(ctx context.Context, source string) (json.RawMessage, error) {
	return s.send(ctx, "eth_compileLLL", source)
}

func (s *Service) CompileSerpent(ctx context.Context, source string) (json.RawMessage, error) {
	return s.send(ctx, "eth_compileSerpent", source)
}
