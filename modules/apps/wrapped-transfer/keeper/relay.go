package keeper

import (
	"context"
	"math"
	"time"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v8/modules/core/05-port/types"
	ibcerrors "github.com/cosmos/ibc-go/v8/modules/core/errors"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/internal/events"
	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/internal/telemetry"
	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// ExecuteTransfer sends amount of the token deposited by sender to the remote
// address over the requested channel.
//
// The tokens are already held by the application when this is called: the
// token contract moved them before notifying us. The channel balance is
// therefore increased right away, before the counterparty has seen the
// packet, and is reduced again in OnAcknowledgementPacket (error
// acknowledgement) or OnTimeoutPacket. A transfer whose acknowledgement is
// never relayed keeps the balance elevated.
//
// All checks run before the first write, so a failed transfer leaves the
// store untouched.
func (k Keeper) ExecuteTransfer(
	ctx context.Context,
	req types.TransferRequest,
	tokenAddress string,
	amount sdkmath.Uint,
	sender string,
) (*types.Response, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if !k.GetParams(ctx).SendEnabled {
		return nil, types.ErrSendDisabled
	}

	if amount.IsZero() {
		return nil, types.ErrNoFunds
	}

	// ensure the requested channel is registered
	if !k.HasChannel(ctx, req.Channel) {
		return nil, errorsmod.Wrapf(types.ErrNoSuchChannel, "channel ID (%s)", req.Channel)
	}

	timeoutTimestamp, err := k.absoluteTimeout(ctx, req.Timeout)
	if err != nil {
		return nil, err
	}

	if err := k.validateAddress(sender); err != nil {
		return nil, errorsmod.Wrap(err, "invalid sender")
	}

	packet := types.NewTransferPacket(amount, tokenAddress, sender, req.RemoteAddress, req.Memo)
	if err := packet.ValidateBasic(); err != nil {
		return nil, err
	}

	// a refund needs the code hash of the token, so unknown tokens are never escrowed
	if !k.IsTokenRegistered(ctx, tokenAddress) {
		return nil, errorsmod.Wrapf(types.ErrTokenNotRegistered, "token %s", tokenAddress)
	}

	portID := k.GetPort(ctx)
	sequence, found := k.channelKeeper.GetNextSequenceSend(sdkCtx, portID, req.Channel)
	if !found {
		return nil, errorsmod.Wrapf(channeltypes.ErrSequenceSendNotFound, "source port: %s, source channel: %s", portID, req.Channel)
	}

	if k.HasPendingTransfer(ctx, req.Channel, sequence) {
		return nil, errorsmod.Wrapf(types.ErrPendingTransferExists, "channel %s, sequence %d", req.Channel, sequence)
	}

	balance, err := k.GetChannelBalance(ctx, req.Channel, tokenAddress)
	if err != nil {
		return nil, err
	}
	if _, err := types.SafeAddAmount(balance, amount); err != nil {
		return nil, errorsmod.Wrapf(err, "channel %s, token %s", req.Channel, tokenAddress)
	}

	if err := k.IncreaseChannelBalance(ctx, req.Channel, tokenAddress, amount); err != nil {
		return nil, err
	}

	pending := types.NewPendingTransfer(req.Channel, sequence, tokenAddress, amount, packet.Sender, packet.Receiver)
	if err := k.SetPendingTransfer(ctx, pending); err != nil {
		return nil, err
	}

	events.EmitTransferEvent(ctx, req.Channel, sequence, packet)
	telemetry.ReportTransfer(req.Channel, tokenAddress, amount)
	k.Logger(ctx).Info("wrapped transfer sent", "channel", req.Channel, "sequence", sequence, "denom", packet.Denom, "amount", amount.String())

	res := types.NewResponse().
		AddEffects(types.SendPacketEffect{
			SourcePort:       portID,
			SourceChannel:    req.Channel,
			Data:             packet.GetBytes(),
			TimeoutTimestamp: timeoutTimestamp,
		}).
		AddAttribute(types.AttributeKeyAction, types.ActionTransfer).
		AddAttribute(types.AttributeKeySender, packet.Sender).
		AddAttribute(types.AttributeKeyReceiver, packet.Receiver).
		AddAttribute(types.AttributeKeyDenom, packet.Denom).
		AddAttribute(types.AttributeKeyAmount, packet.Amount.String())

	return res, nil
}

// absoluteTimeout returns the block time plus the relative timeout in unix
// nanoseconds. A zero relative timeout selects the default from the params.
func (k Keeper) absoluteTimeout(ctx context.Context, timeoutSeconds uint64) (uint64, error) {
	if timeoutSeconds == 0 {
		timeoutSeconds = k.GetParams(ctx).DefaultTimeoutSeconds
	}
	if timeoutSeconds == 0 {
		return 0, errorsmod.Wrap(types.ErrInvalidPacketTimeout, "timeout cannot be zero")
	}
	if timeoutSeconds > types.MaxTimeoutSeconds {
		return 0, errorsmod.Wrapf(types.ErrInvalidPacketTimeout, "timeout %ds exceeds maximum %ds", timeoutSeconds, types.MaxTimeoutSeconds)
	}

	blockTime := sdk.UnwrapSDKContext(ctx).BlockTime().UnixNano()
	if blockTime < 0 {
		return 0, errorsmod.Wrapf(types.ErrInvalidPacketTimeout, "block time %d is before the unix epoch", blockTime)
	}

	relative := timeoutSeconds * uint64(time.Second)
	if uint64(blockTime) > math.MaxUint64-relative {
		return 0, errorsmod.Wrapf(types.ErrInvalidPacketTimeout, "timeout %ds overflows block time %d", timeoutSeconds, blockTime)
	}

	return uint64(blockTime) + relative, nil
}

// OnAcknowledgementPacket responds to the success or failure of a packet
// acknowledgement written on the receiving chain. If the acknowledgement
// was a success the pending transfer is settled and the channel balance
// stays as it is. If the acknowledgement failed, the sender is refunded
// using the refundPacket function.
func (k Keeper) OnAcknowledgementPacket(ctx context.Context, packet channeltypes.Packet, data types.TransferPacket, ack channeltypes.Acknowledgement) (*types.Response, error) {
	switch resp := ack.Response.(type) {
	case *channeltypes.Acknowledgement_Result:
		return k.settlePacket(ctx, packet, data)
	case *channeltypes.Acknowledgement_Error:
		k.Logger(ctx).Error("acknowledgement error", "channel", packet.SourceChannel, "sequence", packet.Sequence, "error", resp.Error)
		return k.refundPacket(ctx, packet, data)
	default:
		return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidType, "expected one of [%T, %T], got %T", channeltypes.Acknowledgement_Result{}, channeltypes.Acknowledgement_Error{}, ack.Response)
	}
}

// OnTimeoutPacket refunds the sender since the original packet sent was
// never received and has been timed out.
func (k Keeper) OnTimeoutPacket(ctx context.Context, packet channeltypes.Packet, data types.TransferPacket) (*types.Response, error) {
	return k.refundPacket(ctx, packet, data)
}

// settlePacket removes the pending record of a successfully received transfer.
func (k Keeper) settlePacket(ctx context.Context, packet channeltypes.Packet, data types.TransferPacket) (*types.Response, error) {
	pending, err := k.pendingTransferForPacket(ctx, packet, data)
	if err != nil {
		return nil, err
	}

	if err := k.RemovePendingTransfer(ctx, pending.ChannelID, pending.Sequence); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("wrapped transfer acknowledged", "channel", pending.ChannelID, "sequence", pending.Sequence)

	return types.NewResponse(), nil
}

// refundPacket reverses the optimistic balance increase of a failed transfer
// and returns the effect sending the tokens back to the original sender.
// The pending record is consumed, so a packet is refunded at most once.
func (k Keeper) refundPacket(ctx context.Context, packet channeltypes.Packet, data types.TransferPacket) (*types.Response, error) {
	if err := data.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(err, "error validating wrapped transfer packet data")
	}

	tokenAddress, err := data.TokenAddress()
	if err != nil {
		return nil, err
	}

	tokenCodeHash, found := k.GetTokenCodeHash(ctx, tokenAddress)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrTokenNotRegistered, "token %s", tokenAddress)
	}

	channelID := packet.SourceChannel
	balance, err := k.GetChannelBalance(ctx, channelID, tokenAddress)
	if err != nil {
		return nil, err
	}
	if data.Amount.GT(balance) {
		return nil, errorsmod.Wrapf(types.ErrInsufficientChannelBalance, "channel %s, token %s: balance %s, refund %s", channelID, tokenAddress, balance, data.Amount)
	}

	pending, err := k.pendingTransferForPacket(ctx, packet, data)
	if err != nil {
		return nil, err
	}

	if err := k.DecreaseChannelBalance(ctx, channelID, tokenAddress, data.Amount); err != nil {
		return nil, err
	}

	if err := k.RemovePendingTransfer(ctx, pending.ChannelID, pending.Sequence); err != nil {
		return nil, err
	}

	telemetry.ReportRefund(channelID, tokenAddress, data.Amount)
	k.Logger(ctx).Info("wrapped transfer refunded", "channel", channelID, "sequence", packet.Sequence, "sender", data.Sender, "amount", data.Amount.String())

	res := types.NewResponse().
		AddEffects(types.TokenTransferEffect{
			Recipient:     data.Sender,
			Amount:        data.Amount,
			BlockSize:     types.TokenMsgBlockSize,
			TokenCodeHash: tokenCodeHash,
			TokenAddress:  tokenAddress,
		}).
		AddAttribute(types.AttributeKeyAction, types.ActionRefund).
		AddAttribute(types.AttributeKeySender, data.Sender).
		AddAttribute(types.AttributeKeyDenom, data.Denom).
		AddAttribute(types.AttributeKeyAmount, data.Amount.String())

	return res, nil
}

// pendingTransferForPacket returns the pending record of a packet sent by
// this application, checking that the packet carries what was recorded.
func (k Keeper) pendingTransferForPacket(ctx context.Context, packet channeltypes.Packet, data types.TransferPacket) (types.PendingTransfer, error) {
	if boundPort := k.GetPort(ctx); packet.SourcePort != boundPort {
		return types.PendingTransfer{}, errorsmod.Wrapf(porttypes.ErrInvalidPort, "invalid port: %s, expected %s", packet.SourcePort, boundPort)
	}

	pending, err := k.GetPendingTransfer(ctx, packet.SourceChannel, packet.Sequence)
	if err != nil {
		return types.PendingTransfer{}, err
	}

	if err := pending.Matches(data); err != nil {
		return types.PendingTransfer{}, errorsmod.Wrapf(err, "channel %s, sequence %d", packet.SourceChannel, packet.Sequence)
	}

	return pending, nil
}
