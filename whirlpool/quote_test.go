package whirlpool

import (
	"context"
	"testing"
	"time"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tyman14888/whirlpools/internal/fixture"
	solanago "github.com/Tyman14888/whirlpools/solana"
	"github.com/Tyman14888/whirlpools/solana/token2022"
	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

func feeMint(bps uint16) *solanago.Token {
	tok := &solanago.Token{Owner: solana.Token2022ProgramID}
	tok.TransferFeeConfig = &token2022.TransferFeeConfig{
		NewerTransferFee: token2022.TransferFee{MaximumFee: ^uint64(0), BasisPoints: bps},
	}
	return tok
}

func testSnapshot(tickIndex int32) *PositionSnapshot {
	pool := &shared.Whirlpool{
		TickCurrentIndex: tickIndex,
		FeeGrowthGlobalA: binary.Uint128{Lo: 800},
		FeeGrowthGlobalB: binary.Uint128{Lo: 1000},
	}
	position := &shared.Position{
		Liquidity:            binary.Uint128{Lo: 10_000_000_000_000_000_000},
		TickLowerIndex:       5,
		TickUpperIndex:       10,
		FeeGrowthCheckpointA: binary.Uint128{Lo: 300},
		FeeOwedA:             binary.Uint128{Lo: 400},
		FeeGrowthCheckpointB: binary.Uint128{Lo: 500},
		FeeOwedB:             binary.Uint128{Lo: 600},
	}
	tick := shared.Tick{
		FeeGrowthOutsideA: binary.Uint128{Lo: 50},
		FeeGrowthOutsideB: binary.Uint128{Lo: 20},
	}
	return &PositionSnapshot{
		Position:  Position{Position: solana.NewWallet().PublicKey(), PositionState: position},
		Pool:      Pool{Whirlpool: pool, Address: solana.NewWallet().PublicKey()},
		TickLower: tick,
		TickUpper: tick,
		Epoch:     600,
	}
}

func TestSnapshotCollectFeesQuote(t *testing.T) {
	quote, err := testSnapshot(7).CollectFeesQuote()
	require.NoError(t, err)
	assert.Equal(t, uint64(616), quote.FeeOwedA.Lo)
	assert.Equal(t, uint64(849), quote.FeeOwedB.Lo)

	snapshot := testSnapshot(7)
	snapshot.MintA = feeMint(2000)
	snapshot.MintB = feeMint(5000)
	quote, err = snapshot.CollectFeesQuote()
	require.NoError(t, err)
	assert.Equal(t, uint64(492), quote.FeeOwedA.Lo)
	assert.Equal(t, uint64(424), quote.FeeOwedB.Lo)

	snapshot.MintA = &solanago.Token{Owner: solana.TokenProgramID}
	quote, err = snapshot.CollectFeesQuote()
	require.NoError(t, err)
	assert.Equal(t, uint64(616), quote.FeeOwedA.Lo)
}

func TestSnapshotCollectRewardsQuote(t *testing.T) {
	snapshot := testSnapshot(7)
	snapshot.Pool.Liquidity = binary.Uint128{Hi: 1}
	snapshot.Pool.RewardLastUpdatedTimestamp = 1_000
	snapshot.Pool.RewardInfos[2] = shared.WhirlpoolRewardInfo{
		Mint:                  solana.NewWallet().PublicKey(),
		EmissionsPerSecondX64: binary.Uint128{Hi: 5},
	}
	snapshot.Position.PositionState.Liquidity = binary.Uint128{Hi: 1}
	snapshot.Position.PositionState.RewardInfos[2].AmountOwed = binary.Uint128{Lo: 7}
	snapshot.RewardMints[2] = feeMint(5000)
	snapshot.Timestamp = 1_010

	quote, err := snapshot.CollectRewardsQuote()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), quote.Rewards[0].RewardsOwed.Lo)
	assert.Equal(t, uint64(28), quote.Rewards[2].RewardsOwed.Lo)
}

func TestGetCollectFeesQuoteMissingPosition(t *testing.T) {
	reg := prometheus.NewRegistry()
	client := NewClient(rpc.New(fixture.NewRPC().Start(t)), WithRegisterer(reg), WithCommitment(rpc.CommitmentConfirmed))

	_, err := client.GetCollectFeesQuote(context.Background(), solana.NewWallet().PublicKey())
	require.ErrorIs(t, err, rpc.ErrNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(client.metrics.quotes.WithLabelValues(quoteKindFees, "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(client.metrics.quotes.WithLabelValues(quoteKindFees, "ok")))
}

func TestMetricsShareRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewClient(rpc.New("http://127.0.0.1:0"), WithRegisterer(reg))
	second := NewClient(rpc.New("http://127.0.0.1:0"), WithRegisterer(reg))
	require.Same(t, first.metrics.quotes, second.metrics.quotes)

	second.metrics.observe(quoteKindRewards, time.Now(), nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(first.metrics.quotes.WithLabelValues(quoteKindRewards, "ok")))
}
