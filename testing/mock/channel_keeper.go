package mock

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

var _ types.ChannelKeeper = (*ChannelKeeper)(nil)

// ChannelKeeper is an in-memory channel registry. It also plays the host by
// dispatching SendPacketEffects, assigning each packet the next send sequence
// of its channel.
type ChannelKeeper struct {
	nextSequenceSend map[string]uint64
	counterparty     map[string]channeltypes.Counterparty

	SentPackets []channeltypes.Packet
}

// NewChannelKeeper returns a ChannelKeeper without channels.
func NewChannelKeeper() *ChannelKeeper {
	return &ChannelKeeper{
		nextSequenceSend: make(map[string]uint64),
		counterparty:     make(map[string]channeltypes.Counterparty),
	}
}

func channelKey(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", portID, channelID)
}

// AddChannel registers an open channel whose first packet has sequence 1.
func (ck *ChannelKeeper) AddChannel(portID, channelID string, counterparty channeltypes.Counterparty) {
	ck.nextSequenceSend[channelKey(portID, channelID)] = 1
	ck.counterparty[channelKey(portID, channelID)] = counterparty
}

// HasChannel implements types.ChannelKeeper
func (ck *ChannelKeeper) HasChannel(_ sdk.Context, portID, channelID string) bool {
	_, found := ck.nextSequenceSend[channelKey(portID, channelID)]
	return found
}

// GetNextSequenceSend implements types.ChannelKeeper
func (ck *ChannelKeeper) GetNextSequenceSend(_ sdk.Context, portID, channelID string) (uint64, bool) {
	sequence, found := ck.nextSequenceSend[channelKey(portID, channelID)]
	return sequence, found
}

// SendPacket performs a SendPacketEffect: the packet is assigned the next send
// sequence of its channel and recorded in SentPackets.
func (ck *ChannelKeeper) SendPacket(effect types.SendPacketEffect) (channeltypes.Packet, error) {
	key := channelKey(effect.SourcePort, effect.SourceChannel)
	sequence, found := ck.nextSequenceSend[key]
	if !found {
		return channeltypes.Packet{}, fmt.Errorf("channel %s not found", key)
	}

	counterparty := ck.counterparty[key]
	packet := channeltypes.NewPacket(
		effect.Data,
		sequence,
		effect.SourcePort,
		effect.SourceChannel,
		counterparty.PortId,
		counterparty.ChannelId,
		clienttypes.ZeroHeight(),
		effect.TimeoutTimestamp,
	)

	ck.nextSequenceSend[key] = sequence + 1
	ck.SentPackets = append(ck.SentPackets, packet)

	return packet, nil
}
