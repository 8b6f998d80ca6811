package fixture

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/Tyman14888/whirlpools/solana/token2022"
	"github.com/Tyman14888/whirlpools/whirlpool/helpers"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

// Seeded position: tick spacing 64, price at tick 0, range [-64, 64) spanning
// the tick arrays starting at -5632 and 0. Quoted at epoch 600 and block time
// 1010 it owes 616 A before a 20% transfer fee (492 net, 6 decimals), 849 B
// (9 decimals) and 34 of the reward in slot 1 (3 decimals).
const (
	SeededEpoch     = 600
	SeededBlockTime = 1_010
)

type SeededPosition struct {
	Pool       solana.PublicKey
	Position   solana.PublicKey
	MintA      solana.PublicKey
	MintB      solana.PublicKey
	RewardMint solana.PublicKey

	LowerTickArray solana.PublicKey
	UpperTickArray solana.PublicKey
}

// SeedPosition stores the seeded pool, position, tick arrays and mints in r.
func SeedPosition(r *RPC) SeededPosition {
	s := SeededPosition{
		Pool:       solana.NewWallet().PublicKey(),
		Position:   solana.NewWallet().PublicKey(),
		MintA:      solana.NewWallet().PublicKey(),
		MintB:      solana.NewWallet().PublicKey(),
		RewardMint: solana.NewWallet().PublicKey(),
	}
	r.Epoch = SeededEpoch
	r.BlockTime = SeededBlockTime

	pool := shared.Whirlpool{
		TickSpacing:                64,
		Liquidity:                  bin.Uint128{Hi: 1},
		TickCurrentIndex:           0,
		TokenMintA:                 s.MintA,
		FeeGrowthGlobalA:           bin.Uint128{Lo: 800},
		TokenMintB:                 s.MintB,
		FeeGrowthGlobalB:           bin.Uint128{Lo: 1000},
		RewardLastUpdatedTimestamp: 1_000,
	}
	pool.RewardInfos[1] = shared.WhirlpoolRewardInfo{
		Mint:                  s.RewardMint,
		EmissionsPerSecondX64: bin.Uint128{Hi: 5},
	}

	position := shared.Position{
		Whirlpool:            s.Pool,
		PositionMint:         solana.NewWallet().PublicKey(),
		Liquidity:            bin.Uint128{Lo: 10_000_000_000_000_000_000},
		TickLowerIndex:       -64,
		TickUpperIndex:       64,
		FeeGrowthCheckpointA: bin.Uint128{Lo: 300},
		FeeOwedA:             bin.Uint128{Lo: 400},
		FeeGrowthCheckpointB: bin.Uint128{Lo: 500},
		FeeOwedB:             bin.Uint128{Lo: 600},
	}
	position.RewardInfos[1].AmountOwed = bin.Uint128{Lo: 7}

	boundary := shared.Tick{
		Initialized:       true,
		FeeGrowthOutsideA: bin.Uint128{Lo: 50},
		FeeGrowthOutsideB: bin.Uint128{Lo: 20},
	}
	lower := shared.TickArray{StartTickIndex: -5632, Whirlpool: s.Pool}
	lower.Ticks[87] = boundary
	upper := shared.TickArray{StartTickIndex: 0, Whirlpool: s.Pool}
	upper.Ticks[1] = boundary
	s.LowerTickArray = helpers.DeriveTickArrayAddress(s.Pool, lower.StartTickIndex)
	s.UpperTickArray = helpers.DeriveTickArrayAddress(s.Pool, upper.StartTickIndex)

	r.SetAccount(s.Pool, helpers.WhirlpoolProgramID, Whirlpool(pool))
	r.SetAccount(s.Position, helpers.WhirlpoolProgramID, Position(position))
	r.SetAccount(s.LowerTickArray, helpers.WhirlpoolProgramID, TickArray(lower))
	r.SetAccount(s.UpperTickArray, helpers.WhirlpoolProgramID, TickArray(upper))
	r.SetAccount(s.MintA, solana.Token2022ProgramID, MintWithTransferFee(6, 1_000_000, token2022.TransferFee{
		MaximumFee:  1_000_000,
		BasisPoints: 2000,
	}))
	r.SetAccount(s.MintB, solana.TokenProgramID, Mint(9, 1_000_000))
	r.SetAccount(s.RewardMint, solana.TokenProgramID, Mint(3, 1_000_000))
	return s
}
