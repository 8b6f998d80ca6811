package solana

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/Tyman14888/whirlpools/solana/token2022"
)

// Token represents a Solana token with mint information and owner
type Token struct {
	token.Mint
	// Owner is the token program that owns the mint
	Owner solana.PublicKey
	// TransferFeeConfig is set for Token-2022 mints carrying the transfer fee extension
	TransferFeeConfig *token2022.TransferFeeConfig
}

// IsToken2022 reports whether the mint belongs to the Token-2022 program.
func (t *Token) IsToken2022() bool {
	return t.Owner.Equals(solana.Token2022ProgramID)
}

// TokenLayout provides methods for decoding token data
type TokenLayout struct {
}

func (l *TokenLayout) Decode(data []byte, owner solana.PublicKey) (*Token, error) {
	mint := token.Mint{}
	if err := mint.UnmarshalWithDecoder(bin.NewBinDecoder(data)); err != nil {
		return nil, fmt.Errorf("decode mint: %w", err)
	}
	out := &Token{Mint: mint, Owner: owner}
	if !out.IsToken2022() {
		return out, nil
	}
	cfg, err := token2022.ParseTransferFeeConfig(data)
	if err != nil {
		return nil, err
	}
	out.TransferFeeConfig = cfg
	return out, nil
}
