package keeper

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"

	"github.com/ibc-apps/wrapped-transfer/internal/validate"
	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

var _ types.QueryServer = (*queryServer)(nil)

type queryServer struct {
	k Keeper
}

// NewQueryServer returns the wrapped transfer QueryServer for the provided Keeper.
func NewQueryServer(k Keeper) types.QueryServer {
	return &queryServer{k: k}
}

// Params implements the Query/Params method
func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	return &types.QueryParamsResponse{
		Params: q.k.GetParams(ctx),
	}, nil
}

// ChannelBalance implements the Query/ChannelBalance method
func (q queryServer) ChannelBalance(ctx context.Context, req *types.QueryChannelBalanceRequest) (*types.QueryChannelBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.GRPCRequest(req.ChannelID); err != nil {
		return nil, err
	}

	if err := validate.TokenAddress(req.TokenAddress); err != nil {
		return nil, err
	}

	amount, err := q.k.GetChannelBalance(ctx, req.ChannelID, req.TokenAddress)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryChannelBalanceResponse{
		Amount: amount,
	}, nil
}

// ChannelBalances implements the Query/ChannelBalances method
func (q queryServer) ChannelBalances(ctx context.Context, req *types.QueryChannelBalancesRequest) (*types.QueryChannelBalancesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	balances, err := q.k.GetAllChannelBalances(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryChannelBalancesResponse{
		Balances: balances,
	}, nil
}

// RegisteredToken implements the Query/RegisteredToken method
func (q queryServer) RegisteredToken(ctx context.Context, req *types.QueryRegisteredTokenRequest) (*types.QueryRegisteredTokenResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.TokenAddress(req.Address); err != nil {
		return nil, err
	}

	codeHash, found := q.k.GetTokenCodeHash(ctx, req.Address)
	if !found {
		return nil, status.Error(
			codes.NotFound,
			errorsmod.Wrap(types.ErrTokenNotRegistered, req.Address).Error(),
		)
	}

	return &types.QueryRegisteredTokenResponse{
		Token: types.NewTokenInfo(req.Address, codeHash),
	}, nil
}

// PendingTransfer implements the Query/PendingTransfer method
func (q queryServer) PendingTransfer(ctx context.Context, req *types.QueryPendingTransferRequest) (*types.QueryPendingTransferResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.GRPCRequest(req.ChannelID); err != nil {
		return nil, err
	}

	pending, err := q.k.GetPendingTransfer(ctx, req.ChannelID, req.Sequence)
	if errors.Is(err, types.ErrPendingTransferNotFound) {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryPendingTransferResponse{
		PendingTransfer: pending,
	}, nil
}
