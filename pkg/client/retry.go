package client

import (
	"fmt"

	"github.com/tanglekit/tangle-client/pkg/nodeapi"
)

// Retry makes a single promote-or-reattach decision for the given message
// based on fresh metadata. If the node reports neither action is needed
// the call fails with ErrNoNeedPromoteOrReattach and nothing is posted.
func (c *Client) Retry(id nodeapi.MessageID) (nodeapi.MessageID, *nodeapi.Message, error) {
	metadata, err := c.api.GetMessageMetadata(id)
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}

	if metadata.ShouldPromote != nil && *metadata.ShouldPromote {
		return c.Promote(id)
	}
	if metadata.ShouldReattach != nil && *metadata.ShouldReattach {
		return c.Reattach(id)
	}
	return nodeapi.MessageID{}, nil, fmt.Errorf(
		"%w: %s", ErrNoNeedPromoteOrReattach, id.Hex(),
	)
}

// Promote posts an empty message whose parents are a fresh tip and the
// promoted message itself, raising the chances of the latter being picked
// up for confirmation. Tips and network id are fetched within the call,
// never reused from a previous one.
func (c *Client) Promote(id nodeapi.MessageID) (nodeapi.MessageID, *nodeapi.Message, error) {
	tips, err := c.api.GetTips()
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}
	networkID, err := c.GetNetworkID()
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}

	message, err := c.buildMessage(networkID, tips.Tip1, id, nil)
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}

	messageID, err := c.api.PostMessage(message)
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}
	return messageID, message, nil
}

// Reattach resubmits the payload of the given message under a fresh pair
// of parents. The original message must carry a payload, otherwise the
// call fails with ErrMissingPayload.
func (c *Client) Reattach(id nodeapi.MessageID) (nodeapi.MessageID, *nodeapi.Message, error) {
	original, err := c.api.GetMessage(id)
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}
	if original.Payload == nil {
		return nodeapi.MessageID{}, nil, fmt.Errorf(
			"%w: %s", ErrMissingPayload, id.Hex(),
		)
	}

	tips, err := c.api.GetTips()
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}
	networkID, err := c.GetNetworkID()
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}

	message, err := c.buildMessage(networkID, tips.Tip1, tips.Tip2, original.Payload)
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}

	messageID, err := c.api.PostMessage(message)
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}
	return messageID, message, nil
}
