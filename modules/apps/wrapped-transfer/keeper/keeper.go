package keeper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// Keeper defines the wrapped token transfer keeper
type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec

	channelKeeper types.ChannelKeeper

	// codeHash is the code hash of this application, handed to token
	// contracts so they can call back into it.
	codeHash string

	// the address capable of executing privileged messages (token registration,
	// params updates). Typically, this should be the x/gov module account or
	// the contract admin.
	authority string

	Schema collections.Schema
	Port   collections.Item[string]
	Params collections.Item[types.Params]
	// ChannelBalances maps (ChannelID, TokenAddress) to the outstanding amount
	ChannelBalances collections.Map[collections.Pair[string, string], sdkmath.Uint]
	// TokenCodeHashes maps a registered token address to its code hash
	TokenCodeHashes collections.Map[string, string]
	// PendingTransfers maps (ChannelID, Sequence) to an unsettled transfer
	PendingTransfers collections.Map[collections.Pair[string, uint64], types.PendingTransfer]
}

// NewKeeper creates a new wrapped transfer Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	channelKeeper types.ChannelKeeper,
	codeHash string,
	authority string,
) Keeper {
	if strings.TrimSpace(authority) == "" {
		panic(errors.New("authority must be non-empty"))
	}
	if strings.TrimSpace(codeHash) == "" {
		panic(errors.New("code hash must be non-empty"))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:     storeService,
		addressCodec:     addressCodec,
		channelKeeper:    channelKeeper,
		codeHash:         codeHash,
		authority:        authority,
		Port:             collections.NewItem(sb, types.PortKey, "port", collections.StringValue),
		Params:           collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValue),
		ChannelBalances:  collections.NewMap(sb, types.ChannelBalancesKey, "channel_balances", collections.PairKeyCodec(collections.StringKey, collections.StringKey), types.UintValue),
		TokenCodeHashes:  collections.NewMap(sb, types.TokenCodeHashesKey, "token_code_hashes", collections.StringKey, collections.StringValue),
		PendingTransfers: collections.NewMap(sb, types.PendingTransfersKey, "pending_transfers", collections.PairKeyCodec(collections.StringKey, collections.Uint64Key), types.PendingTransferValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	return k
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetCodeHash returns the code hash of the application.
func (k Keeper) GetCodeHash() string {
	return k.codeHash
}

// GetPort returns the portID the wrapped transfer application is bound to.
func (k Keeper) GetPort(ctx context.Context) string {
	port, err := k.Port.Get(ctx)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		panic(err)
	}

	return port
}

// SetPort sets the portID the wrapped transfer application is bound to.
func (k Keeper) SetPort(ctx context.Context, portID string) {
	if err := k.Port.Set(ctx, portID); err != nil {
		panic(err)
	}
}

// GetParams returns the current wrapped transfer module parameters, falling
// back to the defaults when none were set.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.Params.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams()
	}
	if err != nil {
		panic(err)
	}

	return params
}

// SetParams sets the wrapped transfer module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) {
	if err := k.Params.Set(ctx, params); err != nil {
		panic(err)
	}
}

// validateAddress checks an address against the configured address codec.
func (k Keeper) validateAddress(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return errorsmod.Wrap(types.ErrInvalidAddress, "address cannot be blank")
	}
	if _, err := k.addressCodec.StringToBytes(addr); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "%s: %v", addr, err)
	}

	return nil
}
