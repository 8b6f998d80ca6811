package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tyman14888/whirlpools/u128"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

func TestTryApplyTransferFee(t *testing.T) {
	tests := []struct {
		name   string
		amount uint64
		fee    shared.TransferFee
		want   uint64
	}{
		{name: "rounds fee up", amount: 616, fee: *shared.NewTransferFee(2000), want: 492},
		{name: "half", amount: 849, fee: *shared.NewTransferFee(5000), want: 424},
		{name: "exact", amount: 10_000, fee: *shared.NewTransferFee(100), want: 9_900},
		{name: "smallest fee is one", amount: 1, fee: *shared.NewTransferFee(1), want: 0},
		{name: "capped", amount: 1_000_000, fee: *shared.NewTransferFeeWithMax(1000, 50), want: 999_950},
		{name: "full rate capped", amount: 1000, fee: *shared.NewTransferFeeWithMax(10_000, 100), want: 900},
		{name: "full rate below cap", amount: 50, fee: *shared.NewTransferFeeWithMax(10_000, 100), want: 0},
		{name: "zero bps", amount: 777, fee: *shared.NewTransferFee(0), want: 777},
		{name: "zero amount", amount: 0, fee: *shared.NewTransferFee(5000), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TryApplyTransferFee(u(tt.amount), tt.fee)
			require.NoError(t, err)
			requireAmount(t, tt.want, got)
		})
	}
}

func TestTryApplyTransferFeeWideAmount(t *testing.T) {
	got, err := TryApplyTransferFee(u128.Max, *shared.NewTransferFeeWithMax(10, 1))
	require.NoError(t, err)
	assert.True(t, u128.Equal(u128.SaturatingSub(u128.Max, u(1)), got))
}

func TestTryReverseApplyTransferFee(t *testing.T) {
	tests := []struct {
		name   string
		amount uint64
		fee    shared.TransferFee
		want   uint64
	}{
		{name: "inverse of rounded fee", amount: 492, fee: *shared.NewTransferFee(2000), want: 615},
		{name: "capped", amount: 999_950, fee: *shared.NewTransferFeeWithMax(1000, 50), want: 1_000_000},
		{name: "full rate", amount: 900, fee: *shared.NewTransferFeeWithMax(10_000, 100), want: 1000},
		{name: "zero bps", amount: 900, fee: *shared.NewTransferFee(0), want: 900},
		{name: "zero amount", amount: 0, fee: *shared.NewTransferFee(3000), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TryReverseApplyTransferFee(u(tt.amount), tt.fee)
			require.NoError(t, err)
			requireAmount(t, tt.want, got)

			net, err := TryApplyTransferFee(got, tt.fee)
			require.NoError(t, err)
			requireAmount(t, tt.amount, net)
		})
	}
}

func TestTryReverseApplyTransferFeeOverflow(t *testing.T) {
	_, err := TryReverseApplyTransferFee(u128.Max, *shared.NewTransferFeeWithMax(10_000, 1))
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)

	_, err = TryReverseApplyTransferFee(u128.Max, *shared.NewTransferFee(5000))
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)
}

func TestInvalidTransferFee(t *testing.T) {
	fee := shared.NewTransferFee(10_001)

	_, err := TryApplyTransferFee(u(100), *fee)
	assert.ErrorIs(t, err, shared.ErrInvalidTransferFee)
	_, err = TryReverseApplyTransferFee(u(100), *fee)
	assert.ErrorIs(t, err, shared.ErrInvalidTransferFee)
	_, err = CollectFeesQuote(testWhirlpool(7), testPosition(), testTick(), testTick(), fee, nil)
	assert.ErrorIs(t, err, shared.ErrInvalidTransferFee)
}

func TestAdjustAmount(t *testing.T) {
	got, err := AdjustAmount(u(616), nil, false)
	require.NoError(t, err)
	requireAmount(t, 616, got)

	got, err = AdjustAmount(u(616), nil, true)
	require.NoError(t, err)
	requireAmount(t, 616, got)

	for _, bps := range []uint16{0, 1, 2000, 5000, 9999, 10_000} {
		for _, inverse := range []bool{false, true} {
			got, err = AdjustAmount(u(0), shared.NewTransferFeeWithMax(bps, 1_000), inverse)
			require.NoError(t, err)
			assert.True(t, u128.IsZero(got), "bps %d inverse %v", bps, inverse)
		}
	}

	got, err = AdjustAmount(u(616), shared.NewTransferFee(2000), false)
	require.NoError(t, err)
	requireAmount(t, 492, got)

	got, err = AdjustAmount(u(492), shared.NewTransferFee(2000), true)
	require.NoError(t, err)
	requireAmount(t, 615, got)
}
