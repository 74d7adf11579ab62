package core

type RetryMode int

const (
	None RetryMode = iota // specifies that no retries will be made
	// Specifies that exponential backoff will be used for transient
	// transport errors. Public RPC endpoints shed load with 5xx responses
	// fairly often, so a bounded backoff loop keeps one-shot scripts from
	// failing on the first hiccup.
	Backoff
)

const (
	JsonRpcVersion = "2.0"
)
