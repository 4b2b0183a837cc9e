package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// RegisterInvariants registers all wrapped transfer invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "pending-within-balance",
		PendingWithinBalanceInvariant(k))
}

// AllInvariants runs all invariants of the wrapped transfer module.
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		return PendingWithinBalanceInvariant(k)(ctx)
	}
}

// PendingWithinBalanceInvariant checks that, for every channel and token, the
// amount of unsettled transfers does not exceed the outstanding channel
// balance. Refunds draw on the balance, so a violation means a refund would fail.
func PendingWithinBalanceInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pending, err := k.GetAllPendingTransfers(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pending within balance", err.Error()), true
		}

		totals := make(map[[2]string]sdkmath.Uint)
		var keys [][2]string
		for _, transfer := range pending {
			key := [2]string{transfer.ChannelID, transfer.TokenAddress}
			total, ok := totals[key]
			if !ok {
				total = sdkmath.ZeroUint()
				keys = append(keys, key)
			}
			totals[key] = total.Add(transfer.Amount)
		}

		var (
			msg    string
			broken bool
		)
		for _, key := range keys {
			balance, err := k.GetChannelBalance(ctx, key[0], key[1])
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "pending within balance", err.Error()), true
			}

			if totals[key].GT(balance) {
				broken = true
				msg += fmt.Sprintf("\tchannel %s token %s: pending %s, balance %s\n", key[0], key[1], totals[key], balance)
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "pending within balance",
			fmt.Sprintf("found channel balance(s) lower than the pending transfers:\n%s", msg)), broken
	}
}
