package helpers

import (
	solanago "github.com/Tyman14888/whirlpools/solana"
	"github.com/Tyman14888/whirlpools/solana/token2022"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

// TransferFeeForEpoch returns the transfer fee a mint charges at currentEpoch,
// or nil for mints without the Token-2022 transfer fee extension.
func TransferFeeForEpoch(mint *solanago.Token, currentEpoch uint64) *shared.TransferFee {
	if mint == nil || mint.TransferFeeConfig == nil {
		return nil
	}
	fee := token2022.GetEpochFee(mint.TransferFeeConfig, currentEpoch)
	return shared.NewTransferFeeWithMax(fee.BasisPoints, fee.MaximumFee)
}
