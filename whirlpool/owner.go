package whirlpool

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	solanago "github.com/Tyman14888/whirlpools/solana"
	"github.com/Tyman14888/whirlpools/whirlpool/helpers"
)

// getMultipleAccounts accepts at most this many keys per request.
const maxMultipleAccounts = 100

// GetPositionsByOwner lists the positions whose NFT owner holds, under both
// token programs. Single-token accounts that are not position mints are skipped.
func (c *Client) GetPositionsByOwner(ctx context.Context, owner solana.PublicKey) ([]Position, error) {
	accounts, err := solanago.GetTokenAccountsByOwner(ctx, c.rpcClient, c.commitment, owner,
		solana.TokenProgramID, solana.Token2022ProgramID)
	if err != nil {
		return nil, err
	}

	var addresses []solana.PublicKey
	for _, account := range accounts {
		if account.HoldsSingleToken() {
			addresses = append(addresses, helpers.DerivePositionAddress(account.Mint))
		}
	}
	if len(addresses) == 0 {
		return nil, nil
	}

	var list []Position
	for start := 0; start < len(addresses); start += maxMultipleAccounts {
		chunk := addresses[start:min(start+maxMultipleAccounts, len(addresses))]
		outs, err := solanago.GetMultipleAccountInfo(ctx, c.rpcClient, c.commitment, chunk)
		if err != nil {
			return nil, fmt.Errorf("get positions of %s: %w", owner, err)
		}
		for i, out := range outs.Value {
			if out == nil || !out.Owner.Equals(helpers.WhirlpoolProgramID) {
				continue
			}
			state, err := helpers.DecodePosition(out.Data.GetBinary())
			if err != nil {
				c.logger.Debug("skip non position account", zap.Stringer("address", chunk[i]), zap.Error(err))
				continue
			}
			list = append(list, Position{Position: chunk[i], PositionState: state})
		}
	}
	c.logger.Debug("positions by owner", zap.Stringer("owner", owner), zap.Int("count", len(list)))
	return list, nil
}
