package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	transfertypes "github.com/cosmos/ibc-go/v8/modules/apps/transfer/types"
)

// TransferPacket is the semantic content of a wrapped token transfer. It is
// carried across the channel as ICS20 FungibleTokenPacketData.
type TransferPacket struct {
	Amount   sdkmath.Uint `json:"amount"`
	Denom    string       `json:"denom"`
	Sender   string       `json:"sender"`
	Receiver string       `json:"receiver"`
	Memo     string       `json:"memo,omitempty"`
}

// NewTransferPacket constructs a new TransferPacket for the given token address.
func NewTransferPacket(amount sdkmath.Uint, tokenAddress, sender, receiver, memo string) TransferPacket {
	return TransferPacket{
		Amount:   amount,
		Denom:    DenomForToken(tokenAddress),
		Sender:   sender,
		Receiver: receiver,
		Memo:     memo,
	}
}

// ValidateBasic is used for validating the token transfer.
// NOTE: The addresses formats are not validated as the receiver can have a
// format defined by the counterparty chain which is not known here.
func (p TransferPacket) ValidateBasic() error {
	if p.Amount.IsZero() {
		return errorsmod.Wrap(ErrInvalidPacket, "amount must be strictly positive")
	}
	if p.Amount.GT(MaxAmount) {
		return errorsmod.Wrapf(ErrInvalidPacket, "amount %s exceeds maximum %s", p.Amount, MaxAmount)
	}
	if strings.TrimSpace(p.Sender) == "" {
		return errorsmod.Wrap(ErrInvalidPacket, "sender address cannot be blank")
	}
	if strings.TrimSpace(p.Receiver) == "" {
		return errorsmod.Wrap(ErrInvalidPacket, "receiver address cannot be blank")
	}
	if _, err := ParseAddressFromDenom(p.Denom); err != nil {
		return errorsmod.Wrap(ErrInvalidPacket, err.Error())
	}

	return nil
}

// TokenAddress returns the token address encoded in the packet denomination.
func (p TransferPacket) TokenAddress() (string, error) {
	return ParseAddressFromDenom(p.Denom)
}

// ToFungibleTokenPacketData converts the packet into its ICS20 wire representation.
func (p TransferPacket) ToFungibleTokenPacketData() transfertypes.FungibleTokenPacketData {
	return transfertypes.NewFungibleTokenPacketData(p.Denom, p.Amount.String(), p.Sender, p.Receiver, p.Memo)
}

// GetBytes is a helper for serialising
func (p TransferPacket) GetBytes() []byte {
	return p.ToFungibleTokenPacketData().GetBytes()
}

// UnmarshalTransferPacket decodes ICS20 packet data bytes into a TransferPacket.
// The decoded packet is not validated.
func UnmarshalTransferPacket(bz []byte) (TransferPacket, error) {
	var data transfertypes.FungibleTokenPacketData
	if err := transfertypes.ModuleCdc.UnmarshalJSON(bz, &data); err != nil {
		return TransferPacket{}, errorsmod.Wrapf(ErrInvalidPacket, "cannot unmarshal ICS-20 transfer packet data: %v", err)
	}

	amount, err := ParseAmount(data.Amount)
	if err != nil {
		return TransferPacket{}, err
	}

	return TransferPacket{
		Amount:   amount,
		Denom:    data.Denom,
		Sender:   data.Sender,
		Receiver: data.Receiver,
		Memo:     data.Memo,
	}, nil
}

// DenomForToken returns the packet denomination for a token address in the
// format '{DenomTag}:{tokenAddress}'.
func DenomForToken(tokenAddress string) string {
	return DenomTag + DenomSeparator + tokenAddress
}

// ParseAddressFromDenom strips the denomination tag and returns the token
// address. It is the inverse of DenomForToken.
func ParseAddressFromDenom(denom string) (string, error) {
	address, found := strings.CutPrefix(denom, DenomTag+DenomSeparator)
	if !found {
		return "", errorsmod.Wrapf(ErrInvalidDenom, "denomination %q is not prefixed with '%s%s'", denom, DenomTag, DenomSeparator)
	}
	if strings.TrimSpace(address) == "" {
		return "", errorsmod.Wrapf(ErrInvalidDenom, "denomination %q has a blank token address", denom)
	}

	return address, nil
}
