package types

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Effect is an outbound action produced by the application. Effects are
// returned to the host, which performs them after the invocation commits.
type Effect interface {
	EffectType() string
}

var (
	_ Effect = (*SendPacketEffect)(nil)
	_ Effect = (*RegisterReceiveEffect)(nil)
	_ Effect = (*SetViewingKeyEffect)(nil)
	_ Effect = (*TokenTransferEffect)(nil)
)

// SendPacketEffect asks the host to send Data over the given channel.
type SendPacketEffect struct {
	SourcePort    string `json:"source_port"`
	SourceChannel string `json:"source_channel"`
	Data          []byte `json:"data"`
	// TimeoutTimestamp is the absolute timeout in unix nanoseconds.
	TimeoutTimestamp uint64 `json:"timeout_timestamp"`
}

// EffectType implements Effect
func (SendPacketEffect) EffectType() string { return "send_packet" }

// RegisterReceiveEffect asks a token contract to notify the application of deposits.
type RegisterReceiveEffect struct {
	// CodeHash is the code hash of the application contract receiving the notifications.
	CodeHash      string `json:"code_hash"`
	BlockSize     int    `json:"block_size"`
	TokenCodeHash string `json:"token_code_hash"`
	TokenAddress  string `json:"token_address"`
}

// EffectType implements Effect
func (RegisterReceiveEffect) EffectType() string { return "register_receive" }

// SetViewingKeyEffect asks a token contract to set the application's viewing key.
type SetViewingKeyEffect struct {
	Key           string `json:"key"`
	BlockSize     int    `json:"block_size"`
	TokenCodeHash string `json:"token_code_hash"`
	TokenAddress  string `json:"token_address"`
}

// EffectType implements Effect
func (SetViewingKeyEffect) EffectType() string { return "set_viewing_key" }

// TokenTransferEffect asks a token contract to transfer tokens held by the
// application back to Recipient.
type TokenTransferEffect struct {
	Recipient     string       `json:"recipient"`
	Amount        sdkmath.Uint `json:"amount"`
	BlockSize     int          `json:"block_size"`
	TokenCodeHash string       `json:"token_code_hash"`
	TokenAddress  string       `json:"token_address"`
}

// EffectType implements Effect
func (TokenTransferEffect) EffectType() string { return "token_transfer" }

// Response is the result of an invocation: the effects the host must perform
// and the attributes describing what happened.
type Response struct {
	Effects    []Effect        `json:"effects"`
	Attributes []sdk.Attribute `json:"attributes"`
}

// NewResponse creates an empty Response.
func NewResponse() *Response {
	return &Response{}
}

// AddEffects appends effects to the response.
func (r *Response) AddEffects(effects ...Effect) *Response {
	r.Effects = append(r.Effects, effects...)
	return r
}

// AddAttribute appends a key/value attribute to the response.
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, sdk.NewAttribute(key, value))
	return r
}

// GetAttribute returns the value of the first attribute with the given key.
func (r *Response) GetAttribute(key string) (string, bool) {
	for _, attr := range r.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}

	return "", false
}
