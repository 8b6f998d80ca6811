package math

import (
	"fmt"

	binary "github.com/gagliardetto/binary"

	"github.com/Tyman14888/whirlpools/u128"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

// growthInside derives the growth accrued inside [tickLower, tickUpper) from the
// global growth and the growth recorded outside each boundary tick.
//
// The outside snapshots are relative to the side of the tick the price was on
// when it was last crossed, so they are flipped to "below lower" and
// "above upper" before being taken off the global growth.
func growthInside(tickCurrent, tickLower, tickUpper int32, global, outsideLower, outsideUpper binary.Uint128) binary.Uint128 {
	below := outsideLower
	above := outsideUpper

	if tickCurrent < tickLower {
		below = u128.SaturatingSub(global, below)
	}
	if tickCurrent >= tickUpper {
		above = u128.SaturatingSub(global, above)
	}

	return u128.SaturatingSub(u128.SaturatingSub(global, below), above)
}

// FeeGrowthInside returns the Q64.64 fee growth per unit of liquidity accrued
// inside the position's range, for token A and token B.
func FeeGrowthInside(pool shared.Whirlpool, position shared.Position, tickLower, tickUpper shared.Tick) (binary.Uint128, binary.Uint128) {
	insideA := growthInside(
		pool.TickCurrentIndex,
		position.TickLowerIndex,
		position.TickUpperIndex,
		pool.FeeGrowthGlobalA,
		tickLower.FeeGrowthOutsideA,
		tickUpper.FeeGrowthOutsideA,
	)
	insideB := growthInside(
		pool.TickCurrentIndex,
		position.TickLowerIndex,
		position.TickUpperIndex,
		pool.FeeGrowthGlobalB,
		tickLower.FeeGrowthOutsideB,
		tickUpper.FeeGrowthOutsideB,
	)
	return insideA, insideB
}

// FeeOwedDelta converts the growth accrued since checkpoint into a token amount:
// ((inside - checkpoint) * liquidity) >> 64.
func FeeOwedDelta(growthInside, checkpoint, liquidity binary.Uint128) (binary.Uint128, error) {
	delta := u128.SaturatingSub(growthInside, checkpoint)
	return narrowU128(mulShr64(delta, liquidity))
}

// withdrawable adds the newly accrued amount to what the position already banked.
func withdrawable(owed, growthInside, checkpoint, liquidity binary.Uint128) (binary.Uint128, error) {
	delta, err := FeeOwedDelta(growthInside, checkpoint, liquidity)
	if err != nil {
		return binary.Uint128{}, fmt.Errorf("fee owed delta: %w", err)
	}
	total, ok := u128.CheckedAdd(owed, delta)
	if !ok {
		return binary.Uint128{}, fmt.Errorf("bank fee owed: %w", shared.ErrArithmeticOverflow)
	}
	return total, nil
}

func validateTickRange(position shared.Position) error {
	if position.TickLowerIndex >= position.TickUpperIndex {
		return fmt.Errorf("%w: lower %d, upper %d", shared.ErrInvalidTickRange, position.TickLowerIndex, position.TickUpperIndex)
	}
	return nil
}

// CollectFeesQuote computes the fees a position can withdraw right now.
//
// tickLower and tickUpper are the ticks at the position's boundaries. The
// transfer fees are the Token-2022 fees of mint A and mint B, nil when the mint
// has none. Inputs are not modified.
func CollectFeesQuote(
	pool shared.Whirlpool,
	position shared.Position,
	tickLower shared.Tick,
	tickUpper shared.Tick,
	transferFeeA *shared.TransferFee,
	transferFeeB *shared.TransferFee,
) (shared.CollectFeesQuote, error) {
	if err := validateTickRange(position); err != nil {
		return shared.CollectFeesQuote{}, err
	}

	insideA, insideB := FeeGrowthInside(pool, position, tickLower, tickUpper)

	withdrawableA, err := withdrawable(position.FeeOwedA, insideA, position.FeeGrowthCheckpointA, position.Liquidity)
	if err != nil {
		return shared.CollectFeesQuote{}, fmt.Errorf("token a: %w", err)
	}
	withdrawableB, err := withdrawable(position.FeeOwedB, insideB, position.FeeGrowthCheckpointB, position.Liquidity)
	if err != nil {
		return shared.CollectFeesQuote{}, fmt.Errorf("token b: %w", err)
	}

	feeOwedA, err := AdjustAmount(withdrawableA, transferFeeA, false)
	if err != nil {
		return shared.CollectFeesQuote{}, fmt.Errorf("token a: %w", err)
	}
	feeOwedB, err := AdjustAmount(withdrawableB, transferFeeB, false)
	if err != nil {
		return shared.CollectFeesQuote{}, fmt.Errorf("token b: %w", err)
	}

	return shared.CollectFeesQuote{
		FeeOwedA: feeOwedA,
		FeeOwedB: feeOwedB,
	}, nil
}
