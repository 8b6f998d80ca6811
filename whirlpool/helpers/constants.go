package helpers

import solanago "github.com/gagliardetto/solana-go"

// WhirlpoolProgramID is the Orca Whirlpools program address.
var WhirlpoolProgramID = solanago.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
