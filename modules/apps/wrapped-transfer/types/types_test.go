package types_test

const (
	tokenAddress = "secret1abc"
	sender       = "alice"
	receiver     = "cosmos1xyz"
	channelID    = "channel-0"
)
