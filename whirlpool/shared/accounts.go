package shared

import (
	"crypto/sha256"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
)

// Account sizes including the 8 byte anchor discriminator.
const (
	WhirlpoolSize        = 653
	PositionSize         = 216
	TickSize             = 113
	TickArrayAccountSize = 8 + 4 + TickArraySize*TickSize + 32
)

var (
	WhirlpoolDiscriminator = accountDiscriminator("Whirlpool")
	PositionDiscriminator  = accountDiscriminator("Position")
	TickArrayDiscriminator = accountDiscriminator("TickArray")
	// DynamicTickArrayDiscriminator marks the variable-size tick array layout,
	// which is recognized but not decoded.
	DynamicTickArrayDiscriminator = accountDiscriminator("DynamicTickArray")
)

func accountDiscriminator(name string) [8]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], sum[:8])
	return out
}

type WhirlpoolRewardInfo struct {
	Mint                  solanago.PublicKey
	Vault                 solanago.PublicKey
	Authority             solanago.PublicKey
	EmissionsPerSecondX64 binary.Uint128
	GrowthGlobalX64       binary.Uint128
}

// Initialized reports whether a reward mint has been set for the slot.
func (r WhirlpoolRewardInfo) Initialized() bool {
	return !r.Mint.IsZero()
}

func (r *WhirlpoolRewardInfo) UnmarshalWithDecoder(decoder *binary.Decoder) error {
	return decodeAll(decoder,
		&r.Mint,
		&r.Vault,
		&r.Authority,
		&r.EmissionsPerSecondX64,
		&r.GrowthGlobalX64,
	)
}

// Whirlpool is the pool account. Only TickCurrentIndex, the global fee growths
// and the reward fields take part in quoting.
type Whirlpool struct {
	WhirlpoolsConfig           solanago.PublicKey
	WhirlpoolBump              [1]uint8
	TickSpacing                uint16
	FeeTierIndexSeed           [2]uint8
	FeeRate                    uint16
	ProtocolFeeRate            uint16
	Liquidity                  binary.Uint128
	SqrtPrice                  binary.Uint128
	TickCurrentIndex           int32
	ProtocolFeeOwedA           uint64
	ProtocolFeeOwedB           uint64
	TokenMintA                 solanago.PublicKey
	TokenVaultA                solanago.PublicKey
	FeeGrowthGlobalA           binary.Uint128
	TokenMintB                 solanago.PublicKey
	TokenVaultB                solanago.PublicKey
	FeeGrowthGlobalB           binary.Uint128
	RewardLastUpdatedTimestamp uint64
	RewardInfos                [NumRewards]WhirlpoolRewardInfo
}

func (w *Whirlpool) UnmarshalWithDecoder(decoder *binary.Decoder) error {
	if err := decodeAll(decoder,
		&w.WhirlpoolsConfig,
		&w.WhirlpoolBump,
		&w.TickSpacing,
		&w.FeeTierIndexSeed,
		&w.FeeRate,
		&w.ProtocolFeeRate,
		&w.Liquidity,
		&w.SqrtPrice,
		&w.TickCurrentIndex,
		&w.ProtocolFeeOwedA,
		&w.ProtocolFeeOwedB,
		&w.TokenMintA,
		&w.TokenVaultA,
		&w.FeeGrowthGlobalA,
		&w.TokenMintB,
		&w.TokenVaultB,
		&w.FeeGrowthGlobalB,
		&w.RewardLastUpdatedTimestamp,
	); err != nil {
		return err
	}
	for i := range w.RewardInfos {
		if err := w.RewardInfos[i].UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	return nil
}

type PositionRewardInfo struct {
	GrowthInsideCheckpoint binary.Uint128
	// AmountOwed is a u64 on chain, widened on decode.
	AmountOwed binary.Uint128
}

func (r *PositionRewardInfo) UnmarshalWithDecoder(decoder *binary.Decoder) error {
	var owed uint64
	if err := decodeAll(decoder, &r.GrowthInsideCheckpoint, &owed); err != nil {
		return err
	}
	r.AmountOwed = binary.Uint128{Lo: owed}
	return nil
}

// Position is a liquidity position over [TickLowerIndex, TickUpperIndex).
// FeeOwedA and FeeOwedB are u64 on chain and widened to 128 bits on decode.
type Position struct {
	Whirlpool            solanago.PublicKey
	PositionMint         solanago.PublicKey
	Liquidity            binary.Uint128
	TickLowerIndex       int32
	TickUpperIndex       int32
	FeeGrowthCheckpointA binary.Uint128
	FeeOwedA             binary.Uint128
	FeeGrowthCheckpointB binary.Uint128
	FeeOwedB             binary.Uint128
	RewardInfos          [NumRewards]PositionRewardInfo
}

func (p *Position) UnmarshalWithDecoder(decoder *binary.Decoder) error {
	var feeOwedA, feeOwedB uint64
	if err := decodeAll(decoder,
		&p.Whirlpool,
		&p.PositionMint,
		&p.Liquidity,
		&p.TickLowerIndex,
		&p.TickUpperIndex,
		&p.FeeGrowthCheckpointA,
		&feeOwedA,
		&p.FeeGrowthCheckpointB,
		&feeOwedB,
	); err != nil {
		return err
	}
	p.FeeOwedA = binary.Uint128{Lo: feeOwedA}
	p.FeeOwedB = binary.Uint128{Lo: feeOwedB}
	for i := range p.RewardInfos {
		if err := p.RewardInfos[i].UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	return nil
}

// Tick is one tick boundary. The outside growths are snapshots taken the last
// time the pool price crossed the tick.
type Tick struct {
	Initialized          bool
	LiquidityNet         binary.Int128
	LiquidityGross       binary.Uint128
	FeeGrowthOutsideA    binary.Uint128
	FeeGrowthOutsideB    binary.Uint128
	RewardGrowthsOutside [NumRewards]binary.Uint128
}

func (t *Tick) UnmarshalWithDecoder(decoder *binary.Decoder) error {
	return decodeAll(decoder,
		&t.Initialized,
		&t.LiquidityNet,
		&t.LiquidityGross,
		&t.FeeGrowthOutsideA,
		&t.FeeGrowthOutsideB,
		&t.RewardGrowthsOutside[0],
		&t.RewardGrowthsOutside[1],
		&t.RewardGrowthsOutside[2],
	)
}

type TickArray struct {
	StartTickIndex int32
	Ticks          [TickArraySize]Tick
	Whirlpool      solanago.PublicKey
}

func (a *TickArray) UnmarshalWithDecoder(decoder *binary.Decoder) error {
	if err := decoder.Decode(&a.StartTickIndex); err != nil {
		return err
	}
	for i := range a.Ticks {
		if err := a.Ticks[i].UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	return decoder.Decode(&a.Whirlpool)
}

func decodeAll(decoder *binary.Decoder, fields ...interface{}) error {
	for _, f := range fields {
		if err := decoder.Decode(f); err != nil {
			return err
		}
	}
	return nil
}
