package events

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// EmitTransferEvent emits a wrapped transfer event on successful transfers.
func EmitTransferEvent(ctx context.Context, channelID string, sequence uint64, packet types.TransferPacket) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyChannel, channelID),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
			sdk.NewAttribute(types.AttributeKeySender, packet.Sender),
			sdk.NewAttribute(types.AttributeKeyReceiver, packet.Receiver),
			sdk.NewAttribute(types.AttributeKeyDenom, packet.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, packet.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyMemo, packet.Memo),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitOnAcknowledgementPacketEvent emits a wrapped token packet event in the OnAcknowledgementPacket callback
func EmitOnAcknowledgementPacketEvent(ctx context.Context, packet channeltypes.Packet, packetData types.TransferPacket, ack channeltypes.Acknowledgement) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyChannel, packet.SourceChannel),
		sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(packet.Sequence, 10)),
		sdk.NewAttribute(types.AttributeKeySender, packetData.Sender),
		sdk.NewAttribute(types.AttributeKeyReceiver, packetData.Receiver),
		sdk.NewAttribute(types.AttributeKeyDenom, packetData.Denom),
		sdk.NewAttribute(types.AttributeKeyAmount, packetData.Amount.String()),
		sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(ack.Success())),
	}

	if errStr := ack.GetError(); errStr != "" {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyAckError, errStr))
	}

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			attributes...,
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitOnTimeoutEvent emits a wrapped token packet event in the OnTimeoutPacket callback
func EmitOnTimeoutEvent(ctx context.Context, packet channeltypes.Packet, packetData types.TransferPacket) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeTimeout,
			sdk.NewAttribute(types.AttributeKeyChannel, packet.SourceChannel),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(packet.Sequence, 10)),
			sdk.NewAttribute(types.AttributeKeyReceiver, packetData.Sender),
			sdk.NewAttribute(types.AttributeKeyDenom, packetData.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, packetData.Amount.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitRegisterTokenEvent emits an event for each registered token.
func EmitRegisterTokenEvent(ctx context.Context, token types.TokenInfo) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegisterToken,
			sdk.NewAttribute(types.AttributeKeyTokenAddress, token.Address),
		),
	)
}
