package core

import (
	"encoding/json"
	"fmt"
)

// Request is the method-name + ordered-parameter envelope a dispatcher
// transmits. Params preserves the positional signature of the remote
// procedure exactly; an empty parameter list must be a non-nil empty
// slice so it serializes as [] and never as null.
type Request struct {
	Method string
	Params []any
}

// JsonRpcPayload is the on-the-wire shape of a JSON-RPC 2.0 request.
type JsonRpcPayload struct {
	ID      string `json:"id"`
	Jsonrpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// JsonRpcError is an error object returned by the remote node. It is
// surfaced to callers unchanged so they can inspect the node's error code.
type JsonRpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *JsonRpcError) Error() string {
	return fmt.Sprintf("json-rpc error %d: %s", e.Code, e.Message)
}
