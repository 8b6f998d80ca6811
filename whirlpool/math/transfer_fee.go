package math

import (
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"

	"github.com/Tyman14888/whirlpools/u128"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

var bpsDenominator = uint256.NewInt(shared.BpsDenominator)

func checkTransferFee(fee shared.TransferFee) error {
	if fee.FeeBps > shared.MaxTransferFeeBps {
		return fmt.Errorf("%w: %d bps", shared.ErrInvalidTransferFee, fee.FeeBps)
	}
	return nil
}

// TryApplyTransferFee returns what arrives when amount is sent through a mint
// charging fee. The fee is rounded up, as Token-2022 does, and capped at MaxFee.
func TryApplyTransferFee(amount binary.Uint128, fee shared.TransferFee) (binary.Uint128, error) {
	if err := checkTransferFee(fee); err != nil {
		return binary.Uint128{}, err
	}
	if fee.FeeBps == 0 || u128.IsZero(amount) {
		return amount, nil
	}

	numerator := new(uint256.Int).Mul(u128.ToUint256(amount), uint256.NewInt(uint64(fee.FeeBps)))
	rawFee := divCeil(numerator, bpsDenominator)
	maxFee := uint256.NewInt(fee.MaxFee)
	if rawFee.Gt(maxFee) {
		rawFee = maxFee
	}

	feeAmount, err := narrowU128(rawFee)
	if err != nil {
		return binary.Uint128{}, err
	}
	return u128.SaturatingSub(amount, feeAmount), nil
}

// TryReverseApplyTransferFee returns the amount that has to be sent so that
// amount arrives after fee is taken.
func TryReverseApplyTransferFee(amount binary.Uint128, fee shared.TransferFee) (binary.Uint128, error) {
	if err := checkTransferFee(fee); err != nil {
		return binary.Uint128{}, err
	}
	if fee.FeeBps == 0 || u128.IsZero(amount) {
		return amount, nil
	}

	capped := func() (binary.Uint128, error) {
		out, ok := u128.CheckedAdd(amount, u128.FromUint64(fee.MaxFee))
		if !ok {
			return binary.Uint128{}, shared.ErrArithmeticOverflow
		}
		return out, nil
	}

	if fee.FeeBps == shared.MaxTransferFeeBps {
		return capped()
	}

	numerator := new(uint256.Int).Mul(u128.ToUint256(amount), bpsDenominator)
	denominator := uint256.NewInt(uint64(shared.MaxTransferFeeBps - fee.FeeBps))
	rawPreFee := divCeil(numerator, denominator)

	feeAmount := saturatingSub(rawPreFee, u128.ToUint256(amount))
	if !feeAmount.Lt(uint256.NewInt(fee.MaxFee)) {
		return capped()
	}
	return narrowU128(rawPreFee)
}

// AdjustAmount applies an optional transfer fee. A nil fee leaves amount as is.
// With inverse set the fee is added on top instead of taken off.
func AdjustAmount(amount binary.Uint128, fee *shared.TransferFee, inverse bool) (binary.Uint128, error) {
	if fee == nil {
		return amount, nil
	}
	if inverse {
		return TryReverseApplyTransferFee(amount, *fee)
	}
	return TryApplyTransferFee(amount, *fee)
}
