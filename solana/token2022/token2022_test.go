package token2022

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extendedMint(exts ...[]byte) []byte {
	data := make([]byte, AccountTypeOffset+1)
	data[44] = 6
	data[45] = 1
	data[AccountTypeOffset] = AccountTypeMint
	for _, ext := range exts {
		data = append(data, ext...)
	}
	return data
}

func tlv(typ uint16, value []byte) []byte {
	out := binary.LittleEndian.AppendUint16(nil, typ)
	out = binary.LittleEndian.AppendUint16(out, uint16(len(value)))
	return append(out, value...)
}

func transferFeeValue(authority solana.PublicKey, older, newer TransferFee) []byte {
	out := append([]byte{}, authority.Bytes()...)
	out = append(out, make([]byte, 32)...)
	out = binary.LittleEndian.AppendUint64(out, 77)
	for _, fee := range []TransferFee{older, newer} {
		out = binary.LittleEndian.AppendUint64(out, fee.Epoch)
		out = binary.LittleEndian.AppendUint64(out, fee.MaximumFee)
		out = binary.LittleEndian.AppendUint16(out, fee.BasisPoints)
	}
	return out
}

func TestParseTransferFeeConfig(t *testing.T) {
	authority := solana.NewWallet().PublicKey()
	older := TransferFee{Epoch: 100, MaximumFee: 5_000, BasisPoints: 50}
	newer := TransferFee{Epoch: 120, MaximumFee: 9_000, BasisPoints: 2000}

	data := extendedMint(
		tlv(18, make([]byte, 64)),
		tlv(ExtTransferFeeConfig, transferFeeValue(authority, older, newer)),
	)

	cfg, err := ParseTransferFeeConfig(data)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.NotNil(t, cfg.TransferFeeConfigAuthority)
	assert.True(t, cfg.TransferFeeConfigAuthority.Equals(authority))
	assert.Nil(t, cfg.WithdrawWithheldAuthority)
	assert.Equal(t, uint64(77), cfg.WithheldAmount)
	assert.Equal(t, older, cfg.OlderTransferFee)
	assert.Equal(t, newer, cfg.NewerTransferFee)

	assert.Equal(t, older, GetEpochFee(cfg, 119))
	assert.Equal(t, newer, GetEpochFee(cfg, 120))
	assert.Equal(t, TransferFee{}, GetEpochFee(nil, 120))
}

func TestParseTransferFeeConfigAbsent(t *testing.T) {
	cfg, err := ParseTransferFeeConfig(make([]byte, MintBaseSize))
	require.NoError(t, err)
	assert.Nil(t, cfg)

	cfg, err = ParseTransferFeeConfig(extendedMint(tlv(18, make([]byte, 64))))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestExtensionsStopsAtPadding(t *testing.T) {
	data := extendedMint(tlv(ExtTransferFeeConfig, make([]byte, transferFeeConfigSize)), make([]byte, 12))
	exts, err := Extensions(data)
	require.NoError(t, err)
	assert.Len(t, exts, 1)
}

func TestExtensionsRejectsBadData(t *testing.T) {
	_, err := Extensions(make([]byte, 100))
	assert.Error(t, err)

	data := extendedMint()
	data[AccountTypeOffset] = 2
	_, err = Extensions(data)
	assert.Error(t, err)

	data = extendedMint(tlv(ExtTransferFeeConfig, make([]byte, transferFeeConfigSize)))
	_, err = Extensions(data[:len(data)-1])
	assert.Error(t, err)

	_, err = ParseTransferFeeConfig(extendedMint(tlv(ExtTransferFeeConfig, make([]byte, 20))))
	assert.Error(t, err)
}
