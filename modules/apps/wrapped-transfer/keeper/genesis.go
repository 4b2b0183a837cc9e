package keeper

import (
	"context"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// InitGenesis initializes the wrapped transfer state and binds to PortID.
func (k Keeper) InitGenesis(ctx context.Context, state types.GenesisState) {
	k.SetPort(ctx, state.PortID)
	k.SetParams(ctx, state.Params)

	for _, balance := range state.ChannelBalances {
		if err := k.IncreaseChannelBalance(ctx, balance.ChannelID, balance.TokenAddress, balance.Amount); err != nil {
			panic(err)
		}
	}

	for _, token := range state.Tokens {
		if err := k.validateAddress(token.Address); err != nil {
			panic(err)
		}
		if err := k.TokenCodeHashes.Set(ctx, token.Address, token.CodeHash); err != nil {
			panic(err)
		}
	}

	for _, pending := range state.PendingTransfers {
		if err := k.SetPendingTransfer(ctx, pending); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis exports the wrapped transfer module's portID, params, ledger
// and registry into its genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	balances, err := k.GetAllChannelBalances(ctx)
	if err != nil {
		panic(err)
	}

	tokens, err := k.GetAllRegisteredTokens(ctx)
	if err != nil {
		panic(err)
	}

	pending, err := k.GetAllPendingTransfers(ctx)
	if err != nil {
		panic(err)
	}

	return types.NewGenesisState(k.GetPort(ctx), k.GetParams(ctx), balances, tokens, pending)
}
