package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// QueryParamsRequest is the request type for the Query/Params method.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params method.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryChannelBalanceRequest is the request type for the Query/ChannelBalance method.
type QueryChannelBalanceRequest struct {
	ChannelID    string `json:"channel_id"`
	TokenAddress string `json:"token_address"`
}

// QueryChannelBalanceResponse is the response type for the Query/ChannelBalance method.
type QueryChannelBalanceResponse struct {
	Amount sdkmath.Uint `json:"amount"`
}

// QueryChannelBalancesRequest is the request type for the Query/ChannelBalances method.
type QueryChannelBalancesRequest struct{}

// QueryChannelBalancesResponse is the response type for the Query/ChannelBalances method.
type QueryChannelBalancesResponse struct {
	Balances []ChannelBalance `json:"balances"`
}

// QueryRegisteredTokenRequest is the request type for the Query/RegisteredToken method.
type QueryRegisteredTokenRequest struct {
	Address string `json:"address"`
}

// QueryRegisteredTokenResponse is the response type for the Query/RegisteredToken method.
type QueryRegisteredTokenResponse struct {
	Token TokenInfo `json:"token"`
}

// QueryPendingTransferRequest is the request type for the Query/PendingTransfer method.
type QueryPendingTransferRequest struct {
	ChannelID string `json:"channel_id"`
	Sequence  uint64 `json:"sequence"`
}

// QueryPendingTransferResponse is the response type for the Query/PendingTransfer method.
type QueryPendingTransferResponse struct {
	PendingTransfer PendingTransfer `json:"pending_transfer"`
}

// QueryServer is the read-only query surface of the application.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	ChannelBalance(ctx context.Context, req *QueryChannelBalanceRequest) (*QueryChannelBalanceResponse, error)
	ChannelBalances(ctx context.Context, req *QueryChannelBalancesRequest) (*QueryChannelBalancesResponse, error)
	RegisteredToken(ctx context.Context, req *QueryRegisteredTokenRequest) (*QueryRegisteredTokenResponse, error)
	PendingTransfer(ctx context.Context, req *QueryPendingTransferRequest) (*QueryPendingTransferResponse, error)
}
