package whirlpool

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	solanago "github.com/Tyman14888/whirlpools/solana"
	"github.com/Tyman14888/whirlpools/whirlpool/helpers"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

type Pool struct {
	*shared.Whirlpool
	Address solana.PublicKey
}

type Position struct {
	Position      solana.PublicKey
	PositionState *shared.Position
}

// PositionSnapshot is every account a quote reads, loaded at one point in time.
type PositionSnapshot struct {
	Position  Position
	Pool      Pool
	TickLower shared.Tick
	TickUpper shared.Tick

	MintA       *solanago.Token
	MintB       *solanago.Token
	RewardMints [shared.NumRewards]*solanago.Token

	// Epoch selects the Token-2022 transfer fee in force.
	Epoch uint64
	// Timestamp is the block time rewards are brought forward to.
	Timestamp uint64
}

func (c *Client) getAccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	out, err := solanago.GetAccountInfo(ctx, c.rpcClient, c.commitment, address)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("account %s: %w", address, rpc.ErrNotFound)
		}
		return nil, fmt.Errorf("get account %s: %w", address, err)
	}
	return out.GetBinary(), nil
}

func (c *Client) FetchPosition(ctx context.Context, position solana.PublicKey) (*shared.Position, error) {
	data, err := c.getAccountData(ctx, position)
	if err != nil {
		return nil, err
	}
	return helpers.DecodePosition(data)
}

func (c *Client) FetchWhirlpool(ctx context.Context, pool solana.PublicKey) (*shared.Whirlpool, error) {
	data, err := c.getAccountData(ctx, pool)
	if err != nil {
		return nil, err
	}
	return helpers.DecodeWhirlpool(data)
}

// FetchBoundaryTicks loads the tick arrays holding the position's boundaries and
// returns the lower and upper tick.
func (c *Client) FetchBoundaryTicks(ctx context.Context, pool Pool, position *shared.Position) (shared.Tick, shared.Tick, error) {
	lowerStart := helpers.TickArrayStartIndex(position.TickLowerIndex, pool.TickSpacing)
	upperStart := helpers.TickArrayStartIndex(position.TickUpperIndex, pool.TickSpacing)

	addresses := []solana.PublicKey{helpers.DeriveTickArrayAddress(pool.Address, lowerStart)}
	if upperStart != lowerStart {
		addresses = append(addresses, helpers.DeriveTickArrayAddress(pool.Address, upperStart))
	}

	outs, err := solanago.GetMultipleAccountInfo(ctx, c.rpcClient, c.commitment, addresses)
	if err != nil {
		return shared.Tick{}, shared.Tick{}, fmt.Errorf("get tick arrays: %w", err)
	}
	if len(outs.Value) != len(addresses) {
		return shared.Tick{}, shared.Tick{}, fmt.Errorf("get tick arrays: got %d accounts, want %d", len(outs.Value), len(addresses))
	}

	arrays := make([]*shared.TickArray, len(addresses))
	for i, out := range outs.Value {
		if out == nil {
			return shared.Tick{}, shared.Tick{}, fmt.Errorf("tick array %s: %w", addresses[i], rpc.ErrNotFound)
		}
		if arrays[i], err = helpers.DecodeTickArray(out.Data.GetBinary()); err != nil {
			if errors.Is(err, shared.ErrUnsupportedTickArray) {
				c.logger.Warn("tick array uses the dynamic layout",
					zap.Stringer("tick_array", addresses[i]),
					zap.Stringer("whirlpool", pool.Address),
				)
			}
			return shared.Tick{}, shared.Tick{}, fmt.Errorf("tick array %s: %w", addresses[i], err)
		}
	}

	lower, err := helpers.TickFromArray(arrays[0], position.TickLowerIndex, pool.TickSpacing)
	if err != nil {
		return shared.Tick{}, shared.Tick{}, err
	}
	upper, err := helpers.TickFromArray(arrays[len(arrays)-1], position.TickUpperIndex, pool.TickSpacing)
	if err != nil {
		return shared.Tick{}, shared.Tick{}, err
	}
	return lower, upper, nil
}

// LoadPositionSnapshot loads a position together with its pool, boundary ticks,
// mints, the current epoch and block time.
func (c *Client) LoadPositionSnapshot(ctx context.Context, position solana.PublicKey) (*PositionSnapshot, error) {
	positionState, err := c.FetchPosition(ctx, position)
	if err != nil {
		return nil, err
	}
	poolState, err := c.FetchWhirlpool(ctx, positionState.Whirlpool)
	if err != nil {
		return nil, err
	}
	pool := Pool{Whirlpool: poolState, Address: positionState.Whirlpool}

	lower, upper, err := c.FetchBoundaryTicks(ctx, pool, positionState)
	if err != nil {
		return nil, err
	}

	mints := []solana.PublicKey{pool.TokenMintA, pool.TokenMintB}
	for _, info := range pool.RewardInfos {
		if info.Initialized() {
			mints = append(mints, info.Mint)
		}
	}
	tokens, err := solanago.GetMultipleToken(ctx, c.rpcClient, c.commitment, mints...)
	if err != nil {
		return nil, fmt.Errorf("get mints: %w", err)
	}
	if len(tokens) != len(mints) {
		return nil, fmt.Errorf("get mints: got %d accounts, want %d", len(tokens), len(mints))
	}

	epoch, err := solanago.GetCurrentEpoch(ctx, c.rpcClient, c.commitment)
	if err != nil {
		return nil, err
	}
	timestamp, err := solanago.GetCurrentBlockTime(ctx, c.rpcClient, c.commitment)
	if err != nil {
		return nil, err
	}

	snapshot := &PositionSnapshot{
		Position:  Position{Position: position, PositionState: positionState},
		Pool:      pool,
		TickLower: lower,
		TickUpper: upper,
		MintA:     tokens[0],
		MintB:     tokens[1],
		Epoch:     epoch,
		Timestamp: timestamp,
	}
	next := 2
	for i, info := range pool.RewardInfos {
		if info.Initialized() {
			snapshot.RewardMints[i] = tokens[next]
			next++
		}
	}

	c.logger.Debug("loaded position snapshot",
		zap.Stringer("position", position),
		zap.Stringer("whirlpool", pool.Address),
		zap.Int32("tick_current", pool.TickCurrentIndex),
		zap.Int32("tick_lower", positionState.TickLowerIndex),
		zap.Int32("tick_upper", positionState.TickUpperIndex),
		zap.Uint64("epoch", epoch),
	)
	return snapshot, nil
}

// GetPositionsByWhirlpool lists every position opened on pool.
func (c *Client) GetPositionsByWhirlpool(ctx context.Context, pool solana.PublicKey) ([]Position, error) {
	outs, err := c.rpcClient.GetProgramAccountsWithOpts(ctx, helpers.WhirlpoolProgramID, &rpc.GetProgramAccountsOpts{
		Commitment: c.commitment,
		Encoding:   solana.EncodingBase64,
		Filters:    helpers.PositionByWhirlpoolFilter(pool),
	})
	if err != nil {
		return nil, fmt.Errorf("get positions of %s: %w", pool, err)
	}

	list := make([]Position, 0, len(outs))
	for _, out := range outs {
		state, err := helpers.DecodePosition(out.Account.Data.GetBinary())
		if err != nil {
			c.logger.Warn("skip undecodable position", zap.Stringer("position", out.Pubkey), zap.Error(err))
			continue
		}
		list = append(list, Position{Position: out.Pubkey, PositionState: state})
	}
	return list, nil
}
