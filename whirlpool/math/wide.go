package math

import (
	binary "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"

	"github.com/Tyman14888/whirlpools/u128"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

// saturatingSub returns x - y, or zero when y > x.
func saturatingSub(x, y *uint256.Int) *uint256.Int {
	if x.Lt(y) {
		return new(uint256.Int)
	}
	return new(uint256.Int).Sub(x, y)
}

// saturatingMul returns x * y clamped to 2^256 - 1.
func saturatingMul(x, y *uint256.Int) *uint256.Int {
	out, overflow := new(uint256.Int).MulOverflow(x, y)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return out
}

// mulShr64 evaluates (x * y) >> 64 in 256 bits, saturating the product.
func mulShr64(x, y binary.Uint128) *uint256.Int {
	product := saturatingMul(u128.ToUint256(x), u128.ToUint256(y))
	return product.Rsh(product, shared.FeeGrowthScaleOffset)
}

func divCeil(x, y *uint256.Int) *uint256.Int {
	q := new(uint256.Int).Div(x, y)
	if !new(uint256.Int).Mod(x, y).IsZero() {
		q.AddUint64(q, 1)
	}
	return q
}

// narrowU128 is the checked downcast back to 128 bits.
func narrowU128(v *uint256.Int) (binary.Uint128, error) {
	out, ok := u128.FromUint256(v)
	if !ok {
		return binary.Uint128{}, shared.ErrArithmeticOverflow
	}
	return out, nil
}
