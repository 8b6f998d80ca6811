package solana

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tyman14888/whirlpools/solana/token2022"
)

func mintData(decimals uint8) []byte {
	data := make([]byte, token2022.MintBaseSize)
	binary.LittleEndian.PutUint64(data[36:44], 1_000_000)
	data[44] = decimals
	data[45] = 1
	return data
}

func TestTokenLayoutDecode(t *testing.T) {
	tok, err := new(TokenLayout).Decode(mintData(6), solana.TokenProgramID)
	require.NoError(t, err)
	assert.Equal(t, uint8(6), tok.Decimals)
	assert.Equal(t, uint64(1_000_000), tok.Supply)
	assert.True(t, tok.IsInitialized)
	assert.False(t, tok.IsToken2022())
	assert.Nil(t, tok.TransferFeeConfig)
}

func TestTokenLayoutDecodeToken2022(t *testing.T) {
	data := append(mintData(9), make([]byte, token2022.AccountTypeOffset-token2022.MintBaseSize)...)
	data = append(data, token2022.AccountTypeMint)

	value := make([]byte, 108)
	binary.LittleEndian.PutUint64(value[98:106], 250)
	binary.LittleEndian.PutUint16(value[106:108], 2000)
	data = binary.LittleEndian.AppendUint16(data, token2022.ExtTransferFeeConfig)
	data = binary.LittleEndian.AppendUint16(data, uint16(len(value)))
	data = append(data, value...)

	tok, err := new(TokenLayout).Decode(data, solana.Token2022ProgramID)
	require.NoError(t, err)
	assert.True(t, tok.IsToken2022())
	assert.Equal(t, uint8(9), tok.Decimals)
	require.NotNil(t, tok.TransferFeeConfig)

	fee := token2022.GetEpochFee(tok.TransferFeeConfig, 0)
	assert.Equal(t, uint16(2000), fee.BasisPoints)
	assert.Equal(t, uint64(250), fee.MaximumFee)
}

func TestTokenLayoutDecodeShort(t *testing.T) {
	_, err := new(TokenLayout).Decode(make([]byte, 10), solana.TokenProgramID)
	assert.Error(t, err)
}
