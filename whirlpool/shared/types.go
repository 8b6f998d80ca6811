package shared

import (
	"math"

	binary "github.com/gagliardetto/binary"
)

const (
	// BpsDenominator is 100% expressed in basis points.
	BpsDenominator = 10_000
	// MaxTransferFeeBps is the largest transfer fee a mint may configure.
	MaxTransferFeeBps uint16 = 10_000
	// FeeGrowthScaleOffset is the number of fractional bits in a Q64.64 growth value.
	FeeGrowthScaleOffset = 64
	// NumRewards is the number of reward slots on pools and positions.
	NumRewards = 3
	// TickArraySize is the number of ticks held by one tick array account.
	TickArraySize = 88
)

// TransferFee is the Token-2022 transfer fee in force for a mint.
// A nil *TransferFee means the mint charges nothing on transfer.
type TransferFee struct {
	FeeBps uint16
	MaxFee uint64
}

// NewTransferFee returns an uncapped fee of feeBps basis points.
func NewTransferFee(feeBps uint16) *TransferFee {
	return &TransferFee{FeeBps: feeBps, MaxFee: math.MaxUint64}
}

// NewTransferFeeWithMax returns a fee of feeBps basis points capped at maxFee.
func NewTransferFeeWithMax(feeBps uint16, maxFee uint64) *TransferFee {
	return &TransferFee{FeeBps: feeBps, MaxFee: maxFee}
}

// CollectFeesQuote holds the fees a position can withdraw, net of transfer fees.
type CollectFeesQuote struct {
	FeeOwedA binary.Uint128
	FeeOwedB binary.Uint128
}

// CollectRewardQuote is the withdrawable amount of one reward slot.
type CollectRewardQuote struct {
	RewardsOwed binary.Uint128
}

type CollectRewardsQuote struct {
	Rewards [NumRewards]CollectRewardQuote
}
