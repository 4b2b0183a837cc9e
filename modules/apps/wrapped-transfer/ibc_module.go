package wrappedtransfer

import (
	"bytes"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	transfertypes "github.com/cosmos/ibc-go/v8/modules/apps/transfer/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
	ibcerrors "github.com/cosmos/ibc-go/v8/modules/core/errors"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/internal/events"
	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/keeper"
	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// IBCModule implements the packet lifecycle callbacks of the wrapped transfer
// application. Unlike the ICS26 callbacks, they return the effects the host
// must perform.
type IBCModule struct {
	keeper keeper.Keeper
}

// NewIBCModule creates a new IBCModule given the keeper
func NewIBCModule(k keeper.Keeper) IBCModule {
	return IBCModule{
		keeper: k,
	}
}

// OnAcknowledgementPacket handles the acknowledgement of a packet sent by
// ExecuteTransfer. An error acknowledgement refunds the sender.
func (im IBCModule) OnAcknowledgementPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	acknowledgement []byte,
	relayer sdk.AccAddress,
) (*types.Response, error) {
	var ack channeltypes.Acknowledgement
	if err := transfertypes.ModuleCdc.UnmarshalJSON(acknowledgement, &ack); err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnknownRequest, "cannot unmarshal ICS-20 transfer packet acknowledgement: %v", err)
	}

	bz := transfertypes.ModuleCdc.MustMarshalJSON(&ack)
	if !bytes.Equal(bz, acknowledgement) {
		return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidType, "acknowledgement did not marshal to expected bytes: %X ≠ %X", bz, acknowledgement)
	}

	data, err := types.UnmarshalTransferPacket(packet.GetData())
	if err != nil {
		return nil, err
	}

	res, err := im.keeper.OnAcknowledgementPacket(ctx, packet, data, ack)
	if err != nil {
		return nil, err
	}

	events.EmitOnAcknowledgementPacketEvent(ctx, packet, data, ack)

	return res, nil
}

// OnTimeoutPacket handles a packet sent by ExecuteTransfer that timed out
// before it was received. The sender is refunded.
func (im IBCModule) OnTimeoutPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) (*types.Response, error) {
	data, err := types.UnmarshalTransferPacket(packet.GetData())
	if err != nil {
		return nil, err
	}

	// refund tokens
	res, err := im.keeper.OnTimeoutPacket(ctx, packet, data)
	if err != nil {
		im.keeper.Logger(ctx).Error(fmt.Sprintf("%s sequence %d", err.Error(), packet.Sequence))
		return nil, err
	}

	events.EmitOnTimeoutEvent(ctx, packet, data)

	return res, nil
}
