package math

import (
	"testing"

	binary "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tyman14888/whirlpools/u128"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

func TestSaturatingMul(t *testing.T) {
	assert.Equal(t, uint256.NewInt(42), saturatingMul(uint256.NewInt(6), uint256.NewInt(7)))

	half := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	got := saturatingMul(half, half)
	assert.Equal(t, new(uint256.Int).SetAllOne(), got)
}

func TestMulShr64(t *testing.T) {
	// 2^64 * 3 >> 64
	got := mulShr64(binary.Uint128{Hi: 1}, u(3))
	assert.Equal(t, uint256.NewInt(3), got)

	// the product of two maximal values needs all 256 bits
	got = mulShr64(u128.Max, u128.Max)
	assert.Equal(t, 192, got.BitLen())
}

func TestNarrowU128(t *testing.T) {
	v, err := narrowU128(u128.ToUint256(u128.Max))
	require.NoError(t, err)
	assert.True(t, u128.Equal(u128.Max, v))

	_, err = narrowU128(new(uint256.Int).Lsh(uint256.NewInt(1), 128))
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)
}

func TestDivCeil(t *testing.T) {
	assert.Equal(t, uint256.NewInt(124), divCeil(uint256.NewInt(1_232_000), uint256.NewInt(10_000)))
	assert.Equal(t, uint256.NewInt(123), divCeil(uint256.NewInt(1_230_000), uint256.NewInt(10_000)))
	assert.True(t, divCeil(new(uint256.Int), uint256.NewInt(7)).IsZero())
}
