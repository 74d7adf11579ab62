package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ethersuite/ethereum-go-sdk/internal/common/core"
	"github.com/mitchellh/mapstructure"
)

type Config struct {
	// URL of the node's JSON-RPC endpoint. http(s) selects the HTTP
	// dispatcher, ws(s) the WebSocket one.
	URL string `mapstructure:"WEB3_URL"`
	// Bearer token added to the Authorization header, for endpoints
	// behind an authenticating proxy.
	Token              string        `mapstructure:"WEB3_TOKEN"`
	InsecureSkipVerify bool          `mapstructure:"WEB3_INSECURE"`
	Development        bool          `mapstructure:"WEB3_DEVELOPMENT"`
	Timeout            time.Duration `mapstructure:"WEB3_TIMEOUT"`
	RetryMaxTime       time.Duration `mapstructure:"WEB3_RETRY_MAX_TIME"`

	// Computed from WEB3_RETRY_MODE, not decoded directly.
	RetryMode core.RetryMode `mapstructure:"-"`
}

var retryModeMap = map[string]core.RetryMode{
	"none":    core.None,
	"backoff": core.Backoff,
}

var envKeys = []string{
	"WEB3_URL",
	"WEB3_TOKEN",
	"WEB3_INSECURE",
	"WEB3_DEVELOPMENT",
	"WEB3_TIMEOUT",
	"WEB3_RETRY_MAX_TIME",
}

// New returns a new Config with sensible defaults.
//
// The following environment variables are honored:
//
// - WEB3_URL: the JSON-RPC endpoint of the node (required).
// - WEB3_TOKEN: bearer token sent with every request.
// - WEB3_INSECURE: whether to skip verifying the server's TLS certificate.
// - WEB3_DEVELOPMENT: whether to enable development mode (debug logs).
// - WEB3_TIMEOUT: per-request timeout for the HTTP dispatcher. Defaults to 30s.
// - WEB3_RETRY_MODE: "none" or "backoff". Defaults to "none".
// - WEB3_RETRY_MAX_TIME: the maximum total time spent retrying. Defaults to 5 minutes.
func New() (*Config, error) {
	if os.Getenv("WEB3_URL") == "" {
		return nil, fmt.Errorf("WEB3_URL is not set, please set it to the node's JSON-RPC endpoint")
	}

	cfg := &Config{
		Timeout:      30 * time.Second,
		RetryMaxTime: 5 * time.Minute,
	}

	settings := make(map[string]string)
	for _, key := range envKeys {
		if v := os.Getenv(key); v != "" {
			settings[key] = v
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	if v := os.Getenv("WEB3_RETRY_MODE"); v != "" {
		mode, ok := retryModeMap[v]
		if !ok {
			return nil, fmt.Errorf("invalid WEB3_RETRY_MODE %q, valid values are none, backoff", v)
		}
		cfg.RetryMode = mode
	}

	return cfg, nil
}
