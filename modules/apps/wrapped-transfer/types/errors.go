package types

import (
	errorsmod "cosmossdk.io/errors"
)

// wrapped transfer sentinel errors
var (
	ErrNoFunds                    = errorsmod.Register(ModuleName, 2, "no funds were sent")
	ErrNoSuchChannel              = errorsmod.Register(ModuleName, 3, "channel is not registered")
	ErrMissingTransferMsg         = errorsmod.Register(ModuleName, 4, "deposit notification is missing the transfer message")
	ErrInvalidTransferMsg         = errorsmod.Register(ModuleName, 5, "invalid transfer message")
	ErrInvalidPacket              = errorsmod.Register(ModuleName, 6, "invalid transfer packet")
	ErrInvalidDenom               = errorsmod.Register(ModuleName, 7, "invalid denomination")
	ErrInvalidAddress             = errorsmod.Register(ModuleName, 8, "invalid address")
	ErrBalanceOverflow            = errorsmod.Register(ModuleName, 9, "channel balance overflow")
	ErrInsufficientChannelBalance = errorsmod.Register(ModuleName, 10, "insufficient channel balance")
	ErrInvalidPacketTimeout       = errorsmod.Register(ModuleName, 11, "invalid packet timeout")
	ErrSendDisabled               = errorsmod.Register(ModuleName, 12, "wrapped token transfers from this chain are disabled")
	ErrTokenNotRegistered         = errorsmod.Register(ModuleName, 13, "token is not registered")
	ErrInvalidCodeHash            = errorsmod.Register(ModuleName, 14, "invalid code hash")
	ErrPendingTransferNotFound    = errorsmod.Register(ModuleName, 15, "pending transfer not found")
	ErrPendingTransferMismatch    = errorsmod.Register(ModuleName, 16, "packet does not match pending transfer")
	ErrPendingTransferExists      = errorsmod.Register(ModuleName, 17, "pending transfer already exists")
	ErrInvalidParams              = errorsmod.Register(ModuleName, 18, "invalid params")
)
