package solana

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenAccountData(mint, owner solana.PublicKey, amount uint64, state AccountState, extra int) []byte {
	data := append([]byte{}, mint.Bytes()...)
	data = append(data, owner.Bytes()...)
	data = binary.LittleEndian.AppendUint64(data, amount)
	data = append(data, make([]byte, 36)...)
	data = append(data, byte(state))
	data = append(data, make([]byte, TokenAccountSize-len(data)+extra)...)
	return data
}

func TestAccountLayoutDecode(t *testing.T) {
	address := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()

	account, err := new(AccountLayout).Decode(address, tokenAccountData(mint, owner, 1, AccountStateInitialized, 0))
	require.NoError(t, err)
	assert.True(t, account.Address.Equals(address))
	assert.True(t, account.Mint.Equals(mint))
	assert.True(t, account.Owner.Equals(owner))
	assert.True(t, account.HoldsSingleToken())

	account, err = new(AccountLayout).Decode(address, tokenAccountData(mint, owner, 1, AccountStateFrozen, 30))
	require.NoError(t, err)
	assert.Equal(t, AccountStateFrozen, account.State)
	assert.True(t, account.HoldsSingleToken())

	account, err = new(AccountLayout).Decode(address, tokenAccountData(mint, owner, 5, AccountStateInitialized, 0))
	require.NoError(t, err)
	assert.False(t, account.HoldsSingleToken())

	_, err = new(AccountLayout).Decode(address, make([]byte, 100))
	assert.Error(t, err)
}
