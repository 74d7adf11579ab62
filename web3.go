/*
Package web3 is the entry point of the SDK: it wires the configuration
to a dispatcher and exposes one typed service per JSON-RPC method
family. See the README for how to add new services.
*/
package web3

import (
	"context"
	"strings"

	"github.com/subosito/gotenv"

	"github.com/ethersuite/ethereum-go-sdk/internal/common/logger"
	"github.com/ethersuite/ethereum-go-sdk/pkg/client"
	"github.com/ethersuite/ethereum-go-sdk/pkg/config"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/chain"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/compile"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/filter"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/library"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/mining"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/node"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/state"
	"github.com/ethersuite/ethereum-go-sdk/pkg/services/txn"
)

type Web3Client struct {
	nodeService    library.Node
	chainService   library.Chain
	stateService   library.State
	txnService     library.Txn
	miningService  library.Mining
	filterService  library.Filter
	compileService library.Compile

	log *logger.Logger
}

// Added to load the .env file in the root of the project, to make it
// easier to try the SDK without exporting the environment variables in
// the machine.
func init() {
	_ = gotenv.Load()
}

// New builds a client with one of the bundled dispatchers, selected by
// the URL scheme: ws(s) gets the WebSocket dispatcher, anything else
// the HTTP one.
func New(cfg *config.Config) (library.Library, error) {
	log, err := logger.New(cfg.Development)
	if err != nil {
		return nil, err
	}

	var dispatcher library.Dispatcher
	if strings.HasPrefix(cfg.URL, "ws://") || strings.HasPrefix(cfg.URL, "wss://") {
		dispatcher, err = client.NewWebSocket(context.Background(), cfg, log)
	} else {
		dispatcher, err = client.NewHTTP(cfg, log)
	}
	if err != nil {
		return nil, err
	}

	return NewWithDispatcher(dispatcher, log), nil
}

// NewWithDispatcher builds a client around a caller-supplied request
// manager. The services treat the dispatcher as read-only shared
// state, so one instance can back any number of clients.
func NewWithDispatcher(dispatcher library.Dispatcher, log *logger.Logger) library.Library {
	return &Web3Client{
		nodeService:    node.New(dispatcher, log),
		chainService:   chain.New(dispatcher, log),
		stateService:   state.New(dispatcher, log),
		txnService:     txn.New(dispatcher, log),
		miningService:  mining.New(dispatcher, log),
		filterService:  filter.New(dispatcher, log),
		compileService: compile.New(dispatcher, log),
		log:            log,
	}
}

func (c *Web3Client) Node() library.Node {
	return c.nodeService
}

func (c *Web3Client) Chain() library.Chain {
	return c.chainService
}

func (c *Web3Client) State() library.State {
	return c.stateService
}

func (c *Web3Client) Txn() library.Txn {
	return c.txnService
}

func (c *Web3Client) Mining() library.Mining {
	return c.miningService
}

func (c *Web3Client) Filter() library.Filter {
	return c.filterService
}

func (c *Web3Client) Compiler() library.Compile {
	return c.compileService
}
