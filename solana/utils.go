package solana

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

func GetAccountInfo(ctx context.Context, rpcClient *rpc.Client, commitment rpc.CommitmentType, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	return rpcClient.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{Commitment: commitment, Encoding: solana.EncodingBase64})
}

func GetMultipleAccountInfo(ctx context.Context, rpcClient *rpc.Client, commitment rpc.CommitmentType, accounts []solana.PublicKey) (*rpc.GetMultipleAccountsResult, error) {
	return rpcClient.GetMultipleAccountsWithOpts(ctx, accounts, &rpc.GetMultipleAccountsOpts{Commitment: commitment, Encoding: solana.EncodingBase64})
}

func GetCurrentEpoch(ctx context.Context, rpcClient *rpc.Client, commitment rpc.CommitmentType) (uint64, error) {
	epochInfo, err := rpcClient.GetEpochInfo(ctx, commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get epoch info: %w", err)
	}
	return epochInfo.Epoch, nil
}

// GetCurrentBlockTime returns the unix time of the latest slot at commitment.
func GetCurrentBlockTime(ctx context.Context, rpcClient *rpc.Client, commitment rpc.CommitmentType) (uint64, error) {
	currentSlot, err := rpcClient.GetSlot(ctx, commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get slot: %w", err)
	}
	currentTime, err := rpcClient.GetBlockTime(ctx, currentSlot)
	if err != nil {
		return 0, fmt.Errorf("failed to get block time: %w", err)
	}
	if currentTime == nil {
		return 0, fmt.Errorf("no block time for slot %d", currentSlot)
	}
	return uint64(currentTime.Time().Unix()), nil
}

// GetMultipleToken loads and decodes mints. Missing accounts come back as nil entries.
func GetMultipleToken(ctx context.Context, rpcClient *rpc.Client, commitment rpc.CommitmentType, tokens ...solana.PublicKey) ([]*Token, error) {
	outs, err := GetMultipleAccountInfo(ctx, rpcClient, commitment, tokens)
	if err != nil {
		return nil, err
	}
	list := make([]*Token, len(outs.Value))
	for i, out := range outs.Value {
		if out == nil {
			continue
		}

		token, err := new(TokenLayout).Decode(out.Data.GetBinary(), out.Owner)
		if err != nil {
			return nil, fmt.Errorf("mint %s: %w", tokens[i], err)
		}

		list[i] = token
	}
	return list, nil
}

// GetTokenAccountsByOwner lists owner's token accounts under each of programIDs.
func GetTokenAccountsByOwner(ctx context.Context, rpcClient *rpc.Client, commitment rpc.CommitmentType, owner solana.PublicKey, programIDs ...solana.PublicKey) ([]*Account, error) {
	var list []*Account
	for _, programID := range programIDs {
		out, err := rpcClient.GetTokenAccountsByOwner(ctx, owner,
			&rpc.GetTokenAccountsConfig{ProgramId: &programID},
			&rpc.GetTokenAccountsOpts{Commitment: commitment, Encoding: solana.EncodingBase64},
		)
		if err != nil {
			return nil, fmt.Errorf("get token accounts of %s: %w", owner, err)
		}
		for _, acc := range out.Value {
			if acc == nil {
				continue
			}
			account, err := new(AccountLayout).Decode(acc.Pubkey, acc.Account.Data.GetBinary())
			if err != nil {
				return nil, err
			}
			list = append(list, account)
		}
	}
	return list, nil
}
