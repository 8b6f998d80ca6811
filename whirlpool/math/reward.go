package math

import (
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"

	"github.com/Tyman14888/whirlpools/u128"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

// rewardGrowthGlobal brings a reward's global growth forward by the emissions of
// the elapsed seconds, spread over the pool's active liquidity.
// The accumulator wraps at 2^128 like the on-chain one.
func rewardGrowthGlobal(info shared.WhirlpoolRewardInfo, liquidity binary.Uint128, elapsed uint64) (binary.Uint128, error) {
	if u128.IsZero(liquidity) || elapsed == 0 {
		return info.GrowthGlobalX64, nil
	}
	delta := saturatingMul(u128.ToUint256(info.EmissionsPerSecondX64), uint256.NewInt(elapsed))
	delta.Div(delta, u128.ToUint256(liquidity))
	growthDelta, err := narrowU128(delta)
	if err != nil {
		return binary.Uint128{}, err
	}
	sum := new(uint256.Int).Add(u128.ToUint256(info.GrowthGlobalX64), u128.ToUint256(growthDelta))
	return binary.Uint128{Lo: sum[0], Hi: sum[1]}, nil
}

// CollectRewardsQuote computes the rewards a position can withdraw at currentTimestamp
// (unix seconds). Reward slots without a mint quote zero.
func CollectRewardsQuote(
	pool shared.Whirlpool,
	position shared.Position,
	tickLower shared.Tick,
	tickUpper shared.Tick,
	currentTimestamp uint64,
	transferFees [shared.NumRewards]*shared.TransferFee,
) (shared.CollectRewardsQuote, error) {
	var quote shared.CollectRewardsQuote
	if err := validateTickRange(position); err != nil {
		return quote, err
	}

	var elapsed uint64
	if currentTimestamp > pool.RewardLastUpdatedTimestamp {
		elapsed = currentTimestamp - pool.RewardLastUpdatedTimestamp
	}

	for i := 0; i < shared.NumRewards; i++ {
		info := pool.RewardInfos[i]
		if !info.Initialized() {
			continue
		}

		global, err := rewardGrowthGlobal(info, pool.Liquidity, elapsed)
		if err != nil {
			return shared.CollectRewardsQuote{}, fmt.Errorf("reward %d growth: %w", i, err)
		}
		inside := growthInside(
			pool.TickCurrentIndex,
			position.TickLowerIndex,
			position.TickUpperIndex,
			global,
			tickLower.RewardGrowthsOutside[i],
			tickUpper.RewardGrowthsOutside[i],
		)

		owed, err := withdrawable(
			position.RewardInfos[i].AmountOwed,
			inside,
			position.RewardInfos[i].GrowthInsideCheckpoint,
			position.Liquidity,
		)
		if err != nil {
			return shared.CollectRewardsQuote{}, fmt.Errorf("reward %d: %w", i, err)
		}

		net, err := AdjustAmount(owed, transferFees[i], false)
		if err != nil {
			return shared.CollectRewardsQuote{}, fmt.Errorf("reward %d: %w", i, err)
		}
		quote.Rewards[i].RewardsOwed = net
	}
	return quote, nil
}
