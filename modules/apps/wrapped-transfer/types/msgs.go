package types

import (
	"context"
	"encoding/json"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
)

// MsgReceive is the deposit notification a token contract sends after
// tokens were sent to the application. Token is the address of the notifying
// token contract and is supplied by the host, not by the notification payload.
type MsgReceive struct {
	Token  string `json:"-"`
	Sender string `json:"sender"`
	// From is the previous owner of the tokens. It is informational only, the
	// refund goes to Sender.
	From   string       `json:"from"`
	Amount sdkmath.Uint `json:"amount"`
	Memo   string       `json:"memo,omitempty"`
	// Msg holds the JSON encoded TransferRequest.
	Msg []byte `json:"msg,omitempty"`
}

// NewMsgReceive creates a new MsgReceive instance
func NewMsgReceive(token, sender, from string, amount sdkmath.Uint, memo string, msg []byte) *MsgReceive {
	return &MsgReceive{
		Token:  token,
		Sender: sender,
		From:   from,
		Amount: amount,
		Memo:   memo,
		Msg:    msg,
	}
}

// TransferRequest decodes the transfer instructions embedded in the notification.
func (msg MsgReceive) TransferRequest() (TransferRequest, error) {
	if len(msg.Msg) == 0 {
		return TransferRequest{}, ErrMissingTransferMsg
	}

	var req TransferRequest
	if err := json.Unmarshal(msg.Msg, &req); err != nil {
		return TransferRequest{}, errorsmod.Wrapf(ErrInvalidTransferMsg, "cannot unmarshal transfer message: %v", err)
	}

	return req, nil
}

// TransferRequest holds the instructions for a single outbound transfer.
type TransferRequest struct {
	// Channel is the local channel to send the packet on.
	Channel string `json:"channel"`
	// RemoteAddress is the receiver on the counterparty chain.
	RemoteAddress string `json:"remote_address"`
	// Timeout is the packet lifetime in seconds. Zero selects the default timeout.
	Timeout uint64 `json:"timeout"`
	Memo    string `json:"memo,omitempty"`
}

// NewTransferRequest creates a new TransferRequest instance
func NewTransferRequest(channel, remoteAddress string, timeout uint64, memo string) TransferRequest {
	return TransferRequest{
		Channel:       channel,
		RemoteAddress: remoteAddress,
		Timeout:       timeout,
		Memo:          memo,
	}
}

// ValidateBasic performs a stateless validation of the request.
func (req TransferRequest) ValidateBasic() error {
	if err := host.ChannelIdentifierValidator(req.Channel); err != nil {
		return errorsmod.Wrapf(ErrInvalidTransferMsg, "invalid channel: %v", err)
	}
	if strings.TrimSpace(req.RemoteAddress) == "" {
		return errorsmod.Wrap(ErrInvalidTransferMsg, "remote address cannot be blank")
	}

	return nil
}

// GetBytes returns the JSON encoding of the request, suitable for MsgReceive.Msg.
func (req TransferRequest) GetBytes() []byte {
	bz, err := json.Marshal(req)
	if err != nil {
		panic(err)
	}

	return bz
}

// TokenInfo identifies a token contract and the code hash needed to call it.
type TokenInfo struct {
	Address  string `json:"address"`
	CodeHash string `json:"code_hash"`
}

// NewTokenInfo creates a new TokenInfo instance
func NewTokenInfo(address, codeHash string) TokenInfo {
	return TokenInfo{
		Address:  address,
		CodeHash: codeHash,
	}
}

// ValidateBasic checks that the code hash is set. The address is validated by
// the keeper against the configured address codec.
func (t TokenInfo) ValidateBasic() error {
	if strings.TrimSpace(t.CodeHash) == "" {
		return errorsmod.Wrapf(ErrInvalidCodeHash, "code hash for token %s cannot be blank", t.Address)
	}

	return nil
}

// MsgRegisterTokens registers token contracts with the application.
type MsgRegisterTokens struct {
	Signer string      `json:"signer"`
	Tokens []TokenInfo `json:"tokens"`
}

// NewMsgRegisterTokens creates a new MsgRegisterTokens instance
func NewMsgRegisterTokens(signer string, tokens ...TokenInfo) *MsgRegisterTokens {
	return &MsgRegisterTokens{
		Signer: signer,
		Tokens: tokens,
	}
}

// MsgUpdateParams updates the module parameters.
type MsgUpdateParams struct {
	Signer string `json:"signer"`
	Params Params `json:"params"`
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(signer string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Signer: signer,
		Params: params,
	}
}

// MsgServer is the set of entrypoints invoked by the host.
type MsgServer interface {
	// Receive handles a deposit notification and sends the deposited tokens.
	Receive(ctx context.Context, msg *MsgReceive) (*Response, error)
	// RegisterTokens registers token contracts with the application.
	RegisterTokens(ctx context.Context, msg *MsgRegisterTokens) (*Response, error)
	// UpdateParams updates the module parameters.
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*Response, error)
}
