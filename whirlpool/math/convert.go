package math

import (
	"math/big"

	binary "github.com/gagliardetto/binary"
	"github.com/shopspring/decimal"

	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

var q64 = decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), shared.FeeGrowthScaleOffset), 0)

// ToUIAmount scales a raw token amount by the mint's decimals.
func ToUIAmount(amount binary.Uint128, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(amount.BigInt(), -int32(decimals))
}

// Q64ToDecimal renders a Q64.64 growth value. A negative decimalPlaces skips rounding.
func Q64ToDecimal(num binary.Uint128, decimalPlaces int32) decimal.Decimal {
	out := decimal.NewFromBigInt(num.BigInt(), 0).Div(q64)
	if decimalPlaces >= 0 {
		return out.Round(decimalPlaces)
	}
	return out
}
