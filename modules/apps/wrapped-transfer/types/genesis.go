package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
)

// GenesisState defines the wrapped transfer genesis state
type GenesisState struct {
	PortID           string            `json:"port_id"`
	Params           Params            `json:"params"`
	ChannelBalances  []ChannelBalance  `json:"channel_balances"`
	Tokens           []TokenInfo       `json:"tokens"`
	PendingTransfers []PendingTransfer `json:"pending_transfers"`
}

// NewGenesisState creates a new wrapped transfer GenesisState instance.
func NewGenesisState(portID string, params Params, balances []ChannelBalance, tokens []TokenInfo, pending []PendingTransfer) *GenesisState {
	return &GenesisState{
		PortID:           portID,
		Params:           params,
		ChannelBalances:  balances,
		Tokens:           tokens,
		PendingTransfers: pending,
	}
}

// DefaultGenesisState returns a GenesisState with the default port and params.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		PortID: PortID,
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := host.PortIdentifierValidator(gs.PortID); err != nil {
		return err
	}

	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenBalances := make(map[string]bool)
	for _, balance := range gs.ChannelBalances {
		key := fmt.Sprintf("%s/%s", balance.ChannelID, balance.TokenAddress)
		if err := host.ChannelIdentifierValidator(balance.ChannelID); err != nil {
			return errorsmod.Wrapf(err, "channel balance %s", key)
		}
		if strings.TrimSpace(balance.TokenAddress) == "" {
			return errorsmod.Wrapf(ErrInvalidAddress, "channel balance %s: token address cannot be blank", key)
		}
		if seenBalances[key] {
			return fmt.Errorf("duplicated channel balance %s", key)
		}
		if balance.Amount.GT(MaxAmount) {
			return errorsmod.Wrapf(ErrBalanceOverflow, "channel balance %s", key)
		}

		seenBalances[key] = true
	}

	seenTokens := make(map[string]bool)
	for _, token := range gs.Tokens {
		if strings.TrimSpace(token.Address) == "" {
			return errorsmod.Wrap(ErrInvalidAddress, "token address cannot be blank")
		}
		if seenTokens[token.Address] {
			return fmt.Errorf("duplicated token %s", token.Address)
		}
		if err := token.ValidateBasic(); err != nil {
			return err
		}

		seenTokens[token.Address] = true
	}

	seenPending := make(map[string]bool)
	for _, pending := range gs.PendingTransfers {
		key := fmt.Sprintf("%s/%d", pending.ChannelID, pending.Sequence)
		if err := host.ChannelIdentifierValidator(pending.ChannelID); err != nil {
			return errorsmod.Wrapf(err, "pending transfer %s", key)
		}
		if seenPending[key] {
			return fmt.Errorf("duplicated pending transfer %s", key)
		}
		if pending.Amount.IsZero() {
			return errorsmod.Wrapf(ErrNoFunds, "pending transfer %s", key)
		}

		seenPending[key] = true
	}

	return nil
}
