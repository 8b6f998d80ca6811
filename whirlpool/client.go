package whirlpool

import (
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Client loads Whirlpool accounts over RPC and quotes what positions can collect.
type Client struct {
	rpcClient  *rpc.Client
	commitment rpc.CommitmentType
	logger     *zap.Logger
	registerer prometheus.Registerer
	metrics    *metrics
}

func NewClient(
	rpcClient *rpc.Client,
	opts ...Option,
) *Client {
	o := &Client{
		rpcClient:  rpcClient,
		commitment: rpc.CommitmentFinalized,
		logger:     zap.NewNop(),
	}
	for _, fn := range opts {
		fn(o)
	}
	o.metrics = newMetrics(o.registerer)
	return o
}

type Option func(*Client)

func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(c *Client) {
		c.commitment = commitment
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRegisterer exposes the client's quote metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = reg
	}
}
