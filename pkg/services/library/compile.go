package library

import (
	"context"
	"encoding/json"
)

// Compile covers the legacy in-node compilation endpoints. Modern
// nodes have dropped them, but older private chains still expose them.
type Compile interface {
	GetCompilers(ctx context.Context) (json.RawMessage, error)
	CompileSolidity(ctx context.Context, source string) (json.RawMessage, error)
	CompileLLL(ctx context.Context, source string) (json.RawMessage, error)
	CompileSerpent(ctx context.Context, source string) (json.RawMessage, error)
}
