package solana

import (
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// TokenAccountSize is the size of an SPL token account. Token-2022 accounts
// append their extensions after it.
const TokenAccountSize = 165

type AccountState uint8

const (
	AccountStateUninitialized AccountState = 0
	AccountStateInitialized   AccountState = 1
	AccountStateFrozen        AccountState = 2
)

type Account struct {
	Address solana.PublicKey
	Mint    solana.PublicKey
	// Owner is the wallet holding the tokens, not the token program.
	Owner  solana.PublicKey
	Amount uint64
	State  AccountState
}

// HoldsSingleToken reports whether the account holds exactly one token, as
// position NFT accounts do.
func (a *Account) HoldsSingleToken() bool {
	return a.Amount == 1 && a.State != AccountStateUninitialized
}

// https://github.com/solana-labs/solana-program-library/blob/master/token/program/src/state.rs
type tokenAccountLayout struct {
	Mint                 solana.PublicKey
	Owner                solana.PublicKey
	Amount               uint64
	DelegateOption       uint32
	Delegate             solana.PublicKey
	State                uint8
	IsNativeOption       uint32
	IsNative             uint64
	DelegatedAmount      uint64
	CloseAuthorityOption uint32
	CloseAuthority       solana.PublicKey
}

type AccountLayout struct {
}

func (l *AccountLayout) Decode(address solana.PublicKey, data []byte) (*Account, error) {
	if len(data) < TokenAccountSize {
		return nil, fmt.Errorf("token account %s has %d bytes, want >= %d", address, len(data), TokenAccountSize)
	}
	raw := &tokenAccountLayout{}
	if err := binary.NewBinDecoder(data[:TokenAccountSize]).Decode(raw); err != nil {
		return nil, fmt.Errorf("decode token account %s: %w", address, err)
	}
	return &Account{
		Address: address,
		Mint:    raw.Mint,
		Owner:   raw.Owner,
		Amount:  raw.Amount,
		State:   AccountState(raw.State),
	}, nil
}
