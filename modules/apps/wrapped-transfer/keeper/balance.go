package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// HasChannel returns true if the channel exists on the port the application is bound to.
func (k Keeper) HasChannel(ctx context.Context, channelID string) bool {
	return k.channelKeeper.HasChannel(sdk.UnwrapSDKContext(ctx), k.GetPort(ctx), channelID)
}

// GetChannelBalance returns the outstanding amount of a token sent over a
// channel. A missing entry is a zero balance.
func (k Keeper) GetChannelBalance(ctx context.Context, channelID, tokenAddress string) (sdkmath.Uint, error) {
	balance, err := k.ChannelBalances.Get(ctx, collections.Join(channelID, tokenAddress))
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroUint(), nil
	}
	if err != nil {
		return sdkmath.ZeroUint(), err
	}

	return balance, nil
}

// IncreaseChannelBalance adds amount to the outstanding balance of the token
// on the channel. The balance is left untouched if the sum overflows.
func (k Keeper) IncreaseChannelBalance(ctx context.Context, channelID, tokenAddress string, amount sdkmath.Uint) error {
	balance, err := k.GetChannelBalance(ctx, channelID, tokenAddress)
	if err != nil {
		return err
	}

	newBalance, err := types.SafeAddAmount(balance, amount)
	if err != nil {
		return errorsmod.Wrapf(err, "channel %s, token %s", channelID, tokenAddress)
	}

	return k.ChannelBalances.Set(ctx, collections.Join(channelID, tokenAddress), newBalance)
}

// DecreaseChannelBalance subtracts amount from the outstanding balance of the
// token on the channel. It fails without modifying the balance if amount
// exceeds it.
func (k Keeper) DecreaseChannelBalance(ctx context.Context, channelID, tokenAddress string, amount sdkmath.Uint) error {
	balance, err := k.GetChannelBalance(ctx, channelID, tokenAddress)
	if err != nil {
		return err
	}

	if amount.GT(balance) {
		return errorsmod.Wrapf(types.ErrInsufficientChannelBalance, "channel %s, token %s: balance %s, requested %s", channelID, tokenAddress, balance, amount)
	}

	return k.ChannelBalances.Set(ctx, collections.Join(channelID, tokenAddress), balance.Sub(amount))
}

// GetAllChannelBalances returns every stored channel balance.
func (k Keeper) GetAllChannelBalances(ctx context.Context) ([]types.ChannelBalance, error) {
	var balances []types.ChannelBalance
	err := k.ChannelBalances.Walk(ctx, nil, func(key collections.Pair[string, string], amount sdkmath.Uint) (bool, error) {
		balances = append(balances, types.NewChannelBalance(key.K1(), key.K2(), amount))
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return balances, nil
}
