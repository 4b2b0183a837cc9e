package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// SetPendingTransfer records a transfer that was just sent
func (k Keeper) SetPendingTransfer(ctx context.Context, pending types.PendingTransfer) error {
	return k.PendingTransfers.Set(ctx, collections.Join(pending.ChannelID, pending.Sequence), pending)
}

// GetPendingTransfer returns the transfer sent on the channel with the given sequence
func (k Keeper) GetPendingTransfer(ctx context.Context, channelID string, sequence uint64) (types.PendingTransfer, error) {
	pending, err := k.PendingTransfers.Get(ctx, collections.Join(channelID, sequence))
	if errors.Is(err, collections.ErrNotFound) {
		return types.PendingTransfer{}, errorsmod.Wrapf(types.ErrPendingTransferNotFound, "channel %s, sequence %d", channelID, sequence)
	}

	return pending, err
}

// HasPendingTransfer returns true if a transfer sent on the channel with the given sequence is unsettled
func (k Keeper) HasPendingTransfer(ctx context.Context, channelID string, sequence uint64) bool {
	has, err := k.PendingTransfers.Has(ctx, collections.Join(channelID, sequence))
	if err != nil {
		panic(err)
	}

	return has
}

// RemovePendingTransfer removes a transfer record.
// Used after the ack or timeout for a packet has been processed
func (k Keeper) RemovePendingTransfer(ctx context.Context, channelID string, sequence uint64) error {
	return k.PendingTransfers.Remove(ctx, collections.Join(channelID, sequence))
}

// GetAllPendingTransfers returns every unsettled transfer
func (k Keeper) GetAllPendingTransfers(ctx context.Context) ([]types.PendingTransfer, error) {
	var pending []types.PendingTransfer
	err := k.PendingTransfers.Walk(ctx, nil, func(_ collections.Pair[string, uint64], transfer types.PendingTransfer) (bool, error) {
		pending = append(pending, transfer)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return pending, nil
}
