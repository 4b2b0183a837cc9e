package validate

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
)

// GRPCRequest validates that the channelID of a gRPC request is a valid identifier.
func GRPCRequest(channelID string) error {
	if err := host.ChannelIdentifierValidator(channelID); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return nil
}

// TokenAddress validates that the token address of a gRPC request is not blank.
func TokenAddress(tokenAddress string) error {
	if strings.TrimSpace(tokenAddress) == "" {
		return status.Error(codes.InvalidArgument, "token address cannot be blank")
	}

	return nil
}
