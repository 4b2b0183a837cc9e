package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// PendingTransfer records an outbound transfer whose acknowledgement or
// timeout has not been processed yet.
type PendingTransfer struct {
	ChannelID    string       `json:"channel_id"`
	Sequence     uint64       `json:"sequence"`
	TokenAddress string       `json:"token_address"`
	Amount       sdkmath.Uint `json:"amount"`
	Sender       string       `json:"sender"`
	Receiver     string       `json:"receiver"`
}

// NewPendingTransfer creates a new PendingTransfer instance
func NewPendingTransfer(channelID string, sequence uint64, tokenAddress string, amount sdkmath.Uint, sender, receiver string) PendingTransfer {
	return PendingTransfer{
		ChannelID:    channelID,
		Sequence:     sequence,
		TokenAddress: tokenAddress,
		Amount:       amount,
		Sender:       sender,
		Receiver:     receiver,
	}
}

// Matches returns ErrPendingTransferMismatch if the packet does not carry the
// same token, amount and parties as the recorded transfer.
func (pt PendingTransfer) Matches(packet TransferPacket) error {
	tokenAddress, err := packet.TokenAddress()
	if err != nil {
		return err
	}

	switch {
	case tokenAddress != pt.TokenAddress:
		return errorsmod.Wrapf(ErrPendingTransferMismatch, "token address %s, expected %s", tokenAddress, pt.TokenAddress)
	case !packet.Amount.Equal(pt.Amount):
		return errorsmod.Wrapf(ErrPendingTransferMismatch, "amount %s, expected %s", packet.Amount, pt.Amount)
	case packet.Sender != pt.Sender:
		return errorsmod.Wrapf(ErrPendingTransferMismatch, "sender %s, expected %s", packet.Sender, pt.Sender)
	case packet.Receiver != pt.Receiver:
		return errorsmod.Wrapf(ErrPendingTransferMismatch, "receiver %s, expected %s", packet.Receiver, pt.Receiver)
	}

	return nil
}

// ChannelBalance is the outstanding amount of a token sent over a channel.
type ChannelBalance struct {
	ChannelID    string       `json:"channel_id"`
	TokenAddress string       `json:"token_address"`
	Amount       sdkmath.Uint `json:"amount"`
}

// NewChannelBalance creates a new ChannelBalance instance
func NewChannelBalance(channelID, tokenAddress string, amount sdkmath.Uint) ChannelBalance {
	return ChannelBalance{
		ChannelID:    channelID,
		TokenAddress: tokenAddress,
		Amount:       amount,
	}
}
