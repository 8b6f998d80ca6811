package whirlpool

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/Tyman14888/whirlpools/u128"
	"github.com/Tyman14888/whirlpools/whirlpool/helpers"
	"github.com/Tyman14888/whirlpools/whirlpool/math"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

// CollectFeesQuote quotes the snapshot's fees net of the mints' transfer fees.
func (s *PositionSnapshot) CollectFeesQuote() (shared.CollectFeesQuote, error) {
	return math.CollectFeesQuote(
		*s.Pool.Whirlpool,
		*s.Position.PositionState,
		s.TickLower,
		s.TickUpper,
		helpers.TransferFeeForEpoch(s.MintA, s.Epoch),
		helpers.TransferFeeForEpoch(s.MintB, s.Epoch),
	)
}

// CollectRewardsQuote quotes the snapshot's rewards at the snapshot's block time.
func (s *PositionSnapshot) CollectRewardsQuote() (shared.CollectRewardsQuote, error) {
	var fees [shared.NumRewards]*shared.TransferFee
	for i, mint := range s.RewardMints {
		fees[i] = helpers.TransferFeeForEpoch(mint, s.Epoch)
	}
	return math.CollectRewardsQuote(
		*s.Pool.Whirlpool,
		*s.Position.PositionState,
		s.TickLower,
		s.TickUpper,
		s.Timestamp,
		fees,
	)
}

// GetCollectFeesQuote loads position and quotes the fees it can collect now.
func (c *Client) GetCollectFeesQuote(ctx context.Context, position solana.PublicKey) (quote shared.CollectFeesQuote, err error) {
	start := time.Now()
	defer func() { c.metrics.observe(quoteKindFees, start, err) }()

	snapshot, err := c.LoadPositionSnapshot(ctx, position)
	if err != nil {
		c.logger.Warn("load position failed", zap.Stringer("position", position), zap.Error(err))
		return shared.CollectFeesQuote{}, err
	}
	quote, err = snapshot.CollectFeesQuote()
	if err != nil {
		c.logger.Error("fees quote failed", zap.Stringer("position", position), zap.Error(err))
		return shared.CollectFeesQuote{}, err
	}
	if ce := c.logger.Check(zap.DebugLevel, "fees quote"); ce != nil {
		insideA, insideB := math.FeeGrowthInside(*snapshot.Pool.Whirlpool, *snapshot.Position.PositionState, snapshot.TickLower, snapshot.TickUpper)
		ce.Write(
			zap.Stringer("position", position),
			zap.String("fee_growth_inside_a", math.Q64ToDecimal(insideA, 12).String()),
			zap.String("fee_growth_inside_b", math.Q64ToDecimal(insideB, 12).String()),
			zap.String("fee_owed_a", u128.String(quote.FeeOwedA)),
			zap.String("fee_owed_b", u128.String(quote.FeeOwedB)),
		)
	}
	return quote, nil
}

// GetCollectRewardsQuote loads position and quotes the rewards it can collect now.
func (c *Client) GetCollectRewardsQuote(ctx context.Context, position solana.PublicKey) (quote shared.CollectRewardsQuote, err error) {
	start := time.Now()
	defer func() { c.metrics.observe(quoteKindRewards, start, err) }()

	snapshot, err := c.LoadPositionSnapshot(ctx, position)
	if err != nil {
		c.logger.Warn("load position failed", zap.Stringer("position", position), zap.Error(err))
		return shared.CollectRewardsQuote{}, err
	}
	quote, err = snapshot.CollectRewardsQuote()
	if err != nil {
		c.logger.Error("rewards quote failed", zap.Stringer("position", position), zap.Error(err))
		return shared.CollectRewardsQuote{}, err
	}
	return quote, nil
}
