package filter

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ethersuite/ethereum-go-sdk/internal/common/core"
	"github.com/ethersuite/ethereum-go-sdk/internal/common/logger"
	"github.com/ethersuite/ethereum-go-sdk/pkg/payloads"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/library"
	mock_library "github.com/ethersuite/ethereum-go-sdk/pkg/services/library/mock"
	"github.com/ethersuite/ethereum-go-sdk/pkg/validation"
)

func setupFilterTest(t *testing.T) (library.Filter, *mock_library.MockDispatcher) {
	ctrl := gomock.NewController(t)
	dispatcher := mock_library.NewMockDispatcher(ctrl)
	log, _ := logger.New(false)
	return New(dispatcher, log), dispatcher
}

func TestNewBlockFilter(t *testing.T) {
	service, dispatcher := setupFilterTest(t)

	// installation calls carry an empty parameter list, never null
	dispatcher.EXPECT().
		Send(gomock.Any(), core.Request{Method: "eth_newBlockFilter", Params: []any{}}).
		Return(json.RawMessage(`"0x1"`), nil)

	result, err := service.NewBlockFilter(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"0x1"`), result)
}

func TestNewPendingTransactionFilter(t *testing.T) {
	service, dispatcher := setupFilterTest(t)

	dispatcher.EXPECT().
		Send(gomock.Any(), core.Request{Method: "eth_newPendingTransactionFilter", Params: []any{}}).
		Return(json.RawMessage(`"0x2"`), nil)

	_, err := service.NewPendingTransactionFilter(context.Background())
	assert.NoError(t, err)
}

func TestNewFilter(t *testing.T) {
	service, dispatcher := setupFilterTest(t)
	ctx := context.Background()

	from := payloads.BlockNumber("0x1")
	address := payloads.Address("0x" + strings.Repeat("22", 20))
	f := payloads.Filter{
		FromBlock: &from,
		ToBlock:   &payloads.LatestBlock,
		Addresses: []payloads.Address{address},
	}

	dispatcher.EXPECT().
		Send(gomock.Any(), core.Request{Method: "eth_newFilter", Params: []any{f}}).
		Return(json.RawMessage(`"0x3"`), nil)

	_, err := service.NewFilter(ctx, f)
	assert.NoError(t, err)

	bad := payloads.BlockByTag("tomorrow")
	_, err = service.NewFilter(ctx, payloads.Filter{ToBlock: &bad})
	var vErr *validation.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestFilterIDOperations(t *testing.T) {
	service, dispatcher := setupFilterTest(t)
	ctx := context.Background()

	tests := []struct {
		method string
		call   func(id payloads.Uint) (json.RawMessage, error)
	}{
		{"eth_uninstallFilter", func(id payloads.Uint) (json.RawMessage, error) { return service.UninstallFilter(ctx, id) }},
		{"eth_getFilterChanges", func(id payloads.Uint) (json.RawMessage, error) { return service.GetFilterChanges(ctx, id) }},
		{"eth_getFilterLogs", func(id payloads.Uint) (json.RawMessage, error) { return service.GetFilterLogs(ctx, id) }},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			dispatcher.EXPECT().
				Send(gomock.Any(), core.Request{Method: tt.method, Params: []any{payloads.Uint("0x3")}}).
				Return(json.RawMessage(`[]`), nil)

			_, err := tt.call("0x3")
			assert.NoError(t, err)

			_, err = tt.call("three")
			var vErr *validation.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, "filterID", vErr.Field)
		})
	}
}

func TestGetLogs(t *testing.T) {
	service, dispatcher := setupFilterTest(t)
	ctx := context.Background()

	topic := payloads.HexString32("0x" + strings.Repeat("aa", 32))
	f := payloads.Filter{Topics: [][]payloads.HexString32{{topic}}}

	dispatcher.EXPECT().
		Send(gomock.Any(), core.Request{Method: "eth_getLogs", Params: []any{f}}).
		Return(json.RawMessage(`[]`), nil)

	_, err := service.GetLogs(ctx, f)
	assert.NoError(t, err)

	_, err = service.GetLogs(ctx, payloads.Filter{Topics: [][]payloads.HexString32{{"0x12"}}})
	var vErr *validation.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
