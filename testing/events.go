package ibctesting

import (
	"errors"
	"slices"
	"strconv"

	testifysuite "github.com/stretchr/testify/suite"

	abci "github.com/cometbft/cometbft/abci/types"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// ParseSequenceFromEvents parses the events emitted by a wrapped transfer and
// returns the sequence recorded for the outbound packet.
func ParseSequenceFromEvents(events []abci.Event) (uint64, error) {
	for _, ev := range events {
		if ev.Type == types.EventTypeTransfer {
			if attribute, found := attributeByKey(ev.Attributes, types.AttributeKeySequence); found {
				return strconv.ParseUint(attribute.Value, 10, 64)
			}
		}
	}
	return 0, errors.New("sequence event attribute not found")
}

// ParseTokenAddressesFromEvents returns the token addresses of every register
// token event, in emission order.
func ParseTokenAddressesFromEvents(events []abci.Event) []string {
	var addresses []string
	for _, ev := range events {
		if ev.Type == types.EventTypeRegisterToken {
			if attribute, found := attributeByKey(ev.Attributes, types.AttributeKeyTokenAddress); found {
				addresses = append(addresses, attribute.Value)
			}
		}
	}
	return addresses
}

// AssertEvents asserts that expected events are present in the actual events.
// An actual event matches when it has the same type and contains every
// expected attribute.
func AssertEvents(
	suite *testifysuite.Suite,
	expected []abci.Event,
	actual []abci.Event,
) {
	foundEvents := make(map[int]bool)

	for i, expectedEvent := range expected {
		for _, actualEvent := range actual {
			if expectedEvent.Type != actualEvent.Type {
				continue
			}

			attributeMatch := true
			for _, expectedAttr := range expectedEvent.Attributes {
				attributeMatch = attributeMatch && containsAttribute(actualEvent.Attributes, expectedAttr.Key, expectedAttr.Value)
			}

			if attributeMatch {
				foundEvents[i] = true
			}
		}
	}

	for i, expectedEvent := range expected {
		suite.Require().True(foundEvents[i], "event: %s was not found in events", expectedEvent.Type)
	}
}

// containsAttribute returns true if the given key/value pair is contained in the given attributes.
// NOTE: this ignores the indexed field, which can be set or unset depending on how the events are retrieved.
func containsAttribute(attrs []abci.EventAttribute, key, value string) bool {
	return slices.ContainsFunc(attrs, func(attr abci.EventAttribute) bool {
		return attr.Key == key && attr.Value == value
	})
}

// attributeByKey returns the event attribute's value keyed by the given key and a boolean indicating its presence in the given attributes.
func attributeByKey(attributes []abci.EventAttribute, key string) (abci.EventAttribute, bool) {
	idx := slices.IndexFunc(attributes, func(a abci.EventAttribute) bool { return a.Key == key })
	if idx == -1 {
		return abci.EventAttribute{}, false
	}
	return attributes[idx], true
}
