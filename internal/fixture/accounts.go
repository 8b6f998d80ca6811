// Package fixture builds on-chain account bytes and serves them over a fake
// Solana JSON-RPC endpoint for tests.
package fixture

import (
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/Tyman14888/whirlpools/solana/token2022"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

// Writer appends little-endian fields the way borsh lays them out.
type Writer struct {
	buf []byte
}

func NewWriter(discriminator [8]byte) *Writer {
	return &Writer{buf: append([]byte{}, discriminator[:]...)}
}

func (w *Writer) Key(k solana.PublicKey) *Writer {
	w.buf = append(w.buf, k.Bytes()...)
	return w
}

func (w *Writer) U8(v uint8) *Writer {
	w.buf = append(w.buf, v)
	return w
}

func (w *Writer) Bool(v bool) *Writer {
	if v {
		return w.U8(1)
	}
	return w.U8(0)
}

func (w *Writer) U16(v uint16) *Writer {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
	return w
}

func (w *Writer) I32(v int32) *Writer {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
	return w
}

func (w *Writer) U64(v uint64) *Writer {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
	return w
}

func (w *Writer) U128(v bin.Uint128) *Writer {
	return w.U64(v.Lo).U64(v.Hi)
}

func (w *Writer) Zeros(n int) *Writer {
	w.buf = append(w.buf, make([]byte, n)...)
	return w
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

// Whirlpool encodes pool as a Whirlpool account.
func Whirlpool(pool shared.Whirlpool) []byte {
	w := NewWriter(shared.WhirlpoolDiscriminator).
		Key(pool.WhirlpoolsConfig).
		U8(pool.WhirlpoolBump[0]).
		U16(pool.TickSpacing).
		U8(pool.FeeTierIndexSeed[0]).U8(pool.FeeTierIndexSeed[1]).
		U16(pool.FeeRate).
		U16(pool.ProtocolFeeRate).
		U128(pool.Liquidity).
		U128(pool.SqrtPrice).
		I32(pool.TickCurrentIndex).
		U64(pool.ProtocolFeeOwedA).
		U64(pool.ProtocolFeeOwedB).
		Key(pool.TokenMintA).
		Key(pool.TokenVaultA).
		U128(pool.FeeGrowthGlobalA).
		Key(pool.TokenMintB).
		Key(pool.TokenVaultB).
		U128(pool.FeeGrowthGlobalB).
		U64(pool.RewardLastUpdatedTimestamp)
	for _, info := range pool.RewardInfos {
		w.Key(info.Mint).
			Key(info.Vault).
			Key(info.Authority).
			U128(info.EmissionsPerSecondX64).
			U128(info.GrowthGlobalX64)
	}
	return w.Bytes()
}

// Position encodes position; the owed amounts are written as u64.
func Position(position shared.Position) []byte {
	w := NewWriter(shared.PositionDiscriminator).
		Key(position.Whirlpool).
		Key(position.PositionMint).
		U128(position.Liquidity).
		I32(position.TickLowerIndex).
		I32(position.TickUpperIndex).
		U128(position.FeeGrowthCheckpointA).
		U64(position.FeeOwedA.Lo).
		U128(position.FeeGrowthCheckpointB).
		U64(position.FeeOwedB.Lo)
	for _, info := range position.RewardInfos {
		w.U128(info.GrowthInsideCheckpoint).U64(info.AmountOwed.Lo)
	}
	return w.Bytes()
}

// TickArray encodes a fixed tick array.
func TickArray(array shared.TickArray) []byte {
	w := NewWriter(shared.TickArrayDiscriminator).I32(array.StartTickIndex)
	for _, tick := range array.Ticks {
		w.Bool(tick.Initialized).
			U64(tick.LiquidityNet.Lo).U64(tick.LiquidityNet.Hi).
			U128(tick.LiquidityGross).
			U128(tick.FeeGrowthOutsideA).
			U128(tick.FeeGrowthOutsideB)
		for _, growth := range tick.RewardGrowthsOutside {
			w.U128(growth)
		}
	}
	return w.Key(array.Whirlpool).Bytes()
}

// Mint encodes an initialized SPL mint without authorities.
func Mint(decimals uint8, supply uint64) []byte {
	w := &Writer{}
	return w.Zeros(4 + 32).
		U64(supply).
		U8(decimals).
		Bool(true).
		Zeros(4 + 32).
		Bytes()
}

// MintWithTransferFee encodes a Token-2022 mint carrying the transfer fee
// extension with fee as both the older and the newer fee.
func MintWithTransferFee(decimals uint8, supply uint64, fee token2022.TransferFee) []byte {
	w := &Writer{buf: Mint(decimals, supply)}
	w.Zeros(token2022.AccountTypeOffset - token2022.MintBaseSize).
		U8(token2022.AccountTypeMint).
		U16(token2022.ExtTransferFeeConfig).
		U16(108).
		Zeros(32 + 32).
		U64(0)
	for i := 0; i < 2; i++ {
		w.U64(fee.Epoch).U64(fee.MaximumFee).U16(fee.BasisPoints)
	}
	return w.Bytes()
}

// TokenAccount encodes an initialized SPL token account.
func TokenAccount(mint, owner solana.PublicKey, amount uint64) []byte {
	w := &Writer{}
	return w.Key(mint).
		Key(owner).
		U64(amount).
		Zeros(4 + 32).
		U8(1).
		Zeros(4 + 8 + 8 + 4 + 32).
		Bytes()
}
