package types

import (
	"math/big"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// MaxAmount is the largest amount representable by a token amount or a channel balance (2^128 - 1).
var MaxAmount = sdkmath.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// ParseAmount parses a base 10 amount, rejecting values which do not fit in 128 bits.
func ParseAmount(s string) (sdkmath.Uint, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrInvalidPacket, "amount %q is not a base 10 unsigned integer", s)
	}

	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrInvalidPacket, "unable to parse amount (%s)", s)
	}

	if i.Cmp(MaxAmount.BigInt()) > 0 {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrInvalidPacket, "amount %s exceeds maximum %s", s, MaxAmount)
	}

	return sdkmath.NewUintFromBigInt(i), nil
}

// SafeAddAmount returns a + b or ErrBalanceOverflow when the sum does not fit in 128 bits.
func SafeAddAmount(a, b sdkmath.Uint) (sdkmath.Uint, error) {
	sum := a.Add(b)
	if sum.GT(MaxAmount) {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrBalanceOverflow, "%s + %s exceeds maximum %s", a, b, MaxAmount)
	}

	return sum, nil
}
