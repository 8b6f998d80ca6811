package helpers

import (
	"strconv"

	solanago "github.com/gagliardetto/solana-go"
)

func DerivePositionAddress(positionMint solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{[]byte("position"), positionMint.Bytes()}, WhirlpoolProgramID)
	return pub
}

// DeriveTickArrayAddress derives the tick array PDA; the start index seed is its decimal string.
func DeriveTickArrayAddress(whirlpool solanago.PublicKey, startTickIndex int32) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{
		[]byte("tick_array"),
		whirlpool.Bytes(),
		[]byte(strconv.FormatInt(int64(startTickIndex), 10)),
	}, WhirlpoolProgramID)
	return pub
}
