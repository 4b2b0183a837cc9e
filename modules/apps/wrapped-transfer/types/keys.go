package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the wrapped token transfer name
	ModuleName = "wrappedtransfer"

	// PortID is the default port id that the wrapped transfer application binds to
	PortID = "wrapped-transfer"

	// StoreKey is the store key string for wrapped transfers
	StoreKey = ModuleName

	// Version defines the ICS20 version spoken on wrapped transfer channels
	Version = "ics20-1"

	// DenomTag prefixes the token address in the denomination carried by a packet.
	DenomTag = "wrapped"

	// DenomSeparator separates DenomTag from the token address.
	DenomSeparator = ":"

	// ViewingKey is the fixed viewing key set on every registered token.
	ViewingKey = "WRAPPED-ICS20"

	// TokenMsgBlockSize is the block size used to pad messages sent to token contracts.
	TokenMsgBlockSize = 256
)

var (
	// ParamsKey stores the module parameters
	ParamsKey = collections.NewPrefix(0)
	// ChannelBalancesKey prefixes the outstanding balance per (channel, token address)
	ChannelBalancesKey = collections.NewPrefix(1)
	// TokenCodeHashesKey prefixes the code hash per registered token address
	TokenCodeHashesKey = collections.NewPrefix(2)
	// PendingTransfersKey prefixes the in-flight transfers per (channel, sequence)
	PendingTransfersKey = collections.NewPrefix(3)
	// PortKey stores the port the application is bound to
	PortKey = collections.NewPrefix(4)
)
