package types

import (
	"math"
	"time"

	errorsmod "cosmossdk.io/errors"
)

const (
	// DefaultSendEnabled enabled
	DefaultSendEnabled = true

	// DefaultTimeoutSeconds is the relative packet timeout applied when a
	// transfer request does not specify one. The default is 10 minutes.
	DefaultTimeoutSeconds = uint64(10 * time.Minute / time.Second)

	// MaxTimeoutSeconds bounds relative timeouts so that the absolute timeout
	// in nanoseconds cannot overflow.
	MaxTimeoutSeconds = uint64(math.MaxInt64 / int64(time.Second))
)

// Params defines the set of wrapped transfer parameters.
type Params struct {
	// SendEnabled enables or disables all outbound wrapped token transfers.
	SendEnabled bool `json:"send_enabled"`
	// DefaultTimeoutSeconds replaces a zero timeout in a transfer request.
	DefaultTimeoutSeconds uint64 `json:"default_timeout_seconds"`
}

// NewParams creates a new parameter configuration for the wrapped transfer module
func NewParams(enableSend bool, defaultTimeoutSeconds uint64) Params {
	return Params{
		SendEnabled:           enableSend,
		DefaultTimeoutSeconds: defaultTimeoutSeconds,
	}
}

// DefaultParams is the default parameter configuration for the wrapped transfer module
func DefaultParams() Params {
	return NewParams(DefaultSendEnabled, DefaultTimeoutSeconds)
}

// Validate all wrapped transfer module parameters
func (p Params) Validate() error {
	if p.DefaultTimeoutSeconds > MaxTimeoutSeconds {
		return errorsmod.Wrapf(ErrInvalidParams, "default timeout %d exceeds maximum %d", p.DefaultTimeoutSeconds, MaxTimeoutSeconds)
	}

	return nil
}
