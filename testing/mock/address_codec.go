package mock

import (
	"errors"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	minAddressLength = 3
	maxAddressLength = 90
)

// TestAddressCodec accepts hex and bech32 addresses as well as short
// human readable names ("alice", "secret1abc") so that tests do not need
// checksummed addresses. Names must be lower case and free of whitespace.
type TestAddressCodec struct{}

func (TestAddressCodec) StringToBytes(text string) ([]byte, error) {
	hexBytes, err := sdk.AccAddressFromHexUnsafe(text)
	if err == nil {
		return hexBytes, nil
	}

	bech32Bytes, err := sdk.AccAddressFromBech32(text)
	if err == nil {
		return bech32Bytes, nil
	}

	if len(text) < minAddressLength || len(text) > maxAddressLength {
		return nil, errors.New("invalid address length")
	}
	if strings.ToLower(text) != text || strings.ContainsAny(text, " \t\n\r") {
		return nil, errors.New("invalid address format")
	}

	return []byte(text), nil
}

func (TestAddressCodec) BytesToString(bz []byte) (string, error) {
	return string(bz), nil
}
