package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ChannelKeeper defines the expected IBC channel keeper. It is the channel
// registry consulted before a transfer is sent.
type ChannelKeeper interface {
	HasChannel(ctx sdk.Context, portID, channelID string) bool
	GetNextSequenceSend(ctx sdk.Context, portID, channelID string) (uint64, bool)
}
