package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	ibcerrors "github.com/cosmos/ibc-go/v8/modules/core/errors"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

var _ types.MsgServer = (*msgServer)(nil)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the wrapped transfer MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// Receive handles a deposit notification from a token contract. The
// notification must embed a TransferRequest describing where to send the
// deposited tokens. The notification memo is used as the packet memo when the
// request carries none.
func (k msgServer) Receive(ctx context.Context, msg *types.MsgReceive) (*types.Response, error) {
	req, err := msg.TransferRequest()
	if err != nil {
		return nil, err
	}

	if req.Memo == "" {
		req.Memo = msg.Memo
	}

	return k.ExecuteTransfer(ctx, req, msg.Token, msg.Amount, msg.Sender)
}

// RegisterTokens defines the handler for token registration. Only the
// authority may register tokens.
func (k msgServer) RegisterTokens(ctx context.Context, msg *types.MsgRegisterTokens) (*types.Response, error) {
	if k.GetAuthority() != msg.Signer {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnauthorized, "expected %s, got %s", k.GetAuthority(), msg.Signer)
	}

	effects, err := k.Keeper.RegisterTokens(ctx, msg.Tokens)
	if err != nil {
		return nil, err
	}

	return types.NewResponse().AddEffects(effects...), nil
}

// UpdateParams defines an rpc handler method for MsgUpdateParams. Updates the
// wrapped transfer parameters.
func (k msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.Response, error) {
	if k.GetAuthority() != msg.Signer {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnauthorized, "expected %s, got %s", k.GetAuthority(), msg.Signer)
	}

	if err := msg.Params.Validate(); err != nil {
		return nil, err
	}

	k.SetParams(ctx, msg.Params)

	return types.NewResponse(), nil
}
