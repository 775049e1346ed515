package client

import (
	"github.com/tanglekit/tangle-client/pkg/nodeapi"
)

// SendOpts is the struct given to the Send method. Index is the mandatory
// indexation key, Data an optional raw payload attached under it.
type SendOpts struct {
	Index string
	Data  []byte
}

// Send builds and posts an indexation message: fresh tips as parents,
// fresh network id, proof of work from the configured provider. It returns
// the id assigned by the node along with the posted message.
func (c *Client) Send(opts SendOpts) (nodeapi.MessageID, *nodeapi.Message, error) {
	if len(opts.Index) <= 0 {
		return nodeapi.MessageID{}, nil, ErrMissingIndexationKey
	}

	tips, err := c.api.GetTips()
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}
	networkID, err := c.GetNetworkID()
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}

	payload := &nodeapi.IndexationPayload{Index: opts.Index, Data: opts.Data}
	message, err := c.buildMessage(networkID, tips.Tip1, tips.Tip2, payload)
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}

	messageID, err := c.api.PostMessage(message)
	if err != nil {
		return nodeapi.MessageID{}, nil, err
	}
	return messageID, message, nil
}
