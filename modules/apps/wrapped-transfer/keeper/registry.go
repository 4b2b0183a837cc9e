package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/internal/events"
	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// RegisterTokens stores the code hash of every token and returns the effects
// which make each token notify this application of deposits and grant it a
// viewing key. Every entry is validated before any of them is stored, so an
// invalid entry leaves the registry untouched.
func (k Keeper) RegisterTokens(ctx context.Context, tokens []types.TokenInfo) ([]types.Effect, error) {
	for i, token := range tokens {
		if err := k.validateAddress(token.Address); err != nil {
			return nil, errorsmod.Wrapf(err, "token %d", i)
		}
		if err := token.ValidateBasic(); err != nil {
			return nil, errorsmod.Wrapf(err, "token %d", i)
		}
	}

	effects := make([]types.Effect, 0, 2*len(tokens))
	for _, token := range tokens {
		if err := k.TokenCodeHashes.Set(ctx, token.Address, token.CodeHash); err != nil {
			return nil, errorsmod.Wrapf(err, "failed to set code hash for token %s", token.Address)
		}

		effects = append(effects,
			types.RegisterReceiveEffect{
				CodeHash:      k.codeHash,
				BlockSize:     types.TokenMsgBlockSize,
				TokenCodeHash: token.CodeHash,
				TokenAddress:  token.Address,
			},
			types.SetViewingKeyEffect{
				Key:           types.ViewingKey,
				BlockSize:     types.TokenMsgBlockSize,
				TokenCodeHash: token.CodeHash,
				TokenAddress:  token.Address,
			},
		)

		events.EmitRegisterTokenEvent(ctx, token)
		k.Logger(ctx).Info("registered token", "address", token.Address, "code_hash", token.CodeHash)
	}

	return effects, nil
}

// GetTokenCodeHash returns the code hash of a registered token.
func (k Keeper) GetTokenCodeHash(ctx context.Context, tokenAddress string) (string, bool) {
	codeHash, err := k.TokenCodeHashes.Get(ctx, tokenAddress)
	if errors.Is(err, collections.ErrNotFound) {
		return "", false
	}
	if err != nil {
		panic(err)
	}

	return codeHash, true
}

// IsTokenRegistered returns true if the token address has been registered.
func (k Keeper) IsTokenRegistered(ctx context.Context, tokenAddress string) bool {
	has, err := k.TokenCodeHashes.Has(ctx, tokenAddress)
	if err != nil {
		panic(err)
	}

	return has
}

// GetAllRegisteredTokens returns every registered token.
func (k Keeper) GetAllRegisteredTokens(ctx context.Context) ([]types.TokenInfo, error) {
	var tokens []types.TokenInfo
	err := k.TokenCodeHashes.Walk(ctx, nil, func(address, codeHash string) (bool, error) {
		tokens = append(tokens, types.NewTokenInfo(address, codeHash))
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return tokens, nil
}
