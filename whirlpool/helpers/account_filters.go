package helpers

import (
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

// PositionByWhirlpoolFilter selects position accounts of one pool; the pool key follows the discriminator.
func PositionByWhirlpoolFilter(pool solanago.PublicKey) []rpc.RPCFilter {
	return []rpc.RPCFilter{
		{DataSize: shared.PositionSize},
		{Memcmp: &rpc.RPCFilterMemcmp{Offset: 8, Bytes: solanago.Base58(pool.Bytes())}},
	}
}
