package whirlpools

import (
	"github.com/Tyman14888/whirlpools/whirlpool"
	"github.com/Tyman14888/whirlpools/whirlpool/math"
)

// NewClient creates a new Whirlpool client.
//
// Example:
//
// client := NewClient(rpcClient, whirlpool.WithCommitment(rpc.CommitmentConfirmed))
//
// quote, _ := client.GetCollectFeesQuote(ctx, positionAddress)
var NewClient = whirlpool.NewClient

// CollectFeesQuote computes a fees quote from already loaded account states.
//
// Example:
//
// quote, _ := CollectFeesQuote(pool, position, tickLower, tickUpper, nil, shared.NewTransferFee(100))
var CollectFeesQuote = math.CollectFeesQuote

// CollectRewardsQuote computes a rewards quote from already loaded account states.
var CollectRewardsQuote = math.CollectRewardsQuote
