package client

import (
	"github.com/tanglekit/tangle-client/pkg/nodeapi"
)

// FindMessages returns every message either listed explicitly or carrying
// one of the given indexation keys. Ids collected from both sources are
// deduplicated before fetching.
func (c *Client) FindMessages(
	indexationKeys []string, messageIDs []nodeapi.MessageID,
) ([]*nodeapi.Message, error) {
	idsToQuery := map[nodeapi.MessageID]struct{}{}
	for _, id := range messageIDs {
		idsToQuery[id] = struct{}{}
	}
	for _, key := range indexationKeys {
		ids, err := c.api.GetMessageIDsByIndex(key)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			idsToQuery[id] = struct{}{}
		}
	}

	messages := make([]*nodeapi.Message, 0, len(idsToQuery))
	for id := range idsToQuery {
		message, err := c.api.GetMessage(id)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// FindOutputs returns the metadata of every output either listed
// explicitly or owned by one of the given addresses, deduplicated.
func (c *Client) FindOutputs(
	outputIDs []nodeapi.OutputID, addresses []string,
) ([]*nodeapi.OutputMetadata, error) {
	idsToQuery := map[nodeapi.OutputID]struct{}{}
	for _, id := range outputIDs {
		idsToQuery[id] = struct{}{}
	}
	for _, address := range addresses {
		ids, err := c.api.GetOutputIDs(address)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			idsToQuery[id] = struct{}{}
		}
	}

	outputs := make([]*nodeapi.OutputMetadata, 0, len(idsToQuery))
	for id := range idsToQuery {
		output, err := c.api.GetOutput(id)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}
