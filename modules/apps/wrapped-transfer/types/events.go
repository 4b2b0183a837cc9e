package types

// wrapped transfer events
const (
	EventTypeTransfer      = "wrapped_transfer"
	EventTypePacket        = "wrapped_token_packet"
	EventTypeTimeout       = "timeout"
	EventTypeRefund        = "wrapped_refund"
	EventTypeRegisterToken = "register_token"

	AttributeKeyAction       = "action"
	AttributeKeySender       = "sender"
	AttributeKeyReceiver     = "receiver"
	AttributeKeyDenom        = "denom"
	AttributeKeyAmount       = "amount"
	AttributeKeyMemo         = "memo"
	AttributeKeyChannel      = "channel"
	AttributeKeySequence     = "sequence"
	AttributeKeyTokenAddress = "token_address"
	AttributeKeyAckSuccess   = "success"
	AttributeKeyAckError     = "error"

	ActionTransfer = "transfer"
	ActionRefund   = "refund"
)
