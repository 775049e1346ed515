package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tanglekit/tangle-client/pkg/nodeapi"
)

func (s *service) PostMessage(message *nodeapi.Message) (nodeapi.MessageID, error) {
	body, err := json.Marshal(newMessageJSON(message))
	if err != nil {
		return nodeapi.MessageID{}, err
	}

	resp, err := s.post("/api/v1/messages", string(body), http.StatusCreated)
	if err != nil {
		return nodeapi.MessageID{}, fmt.Errorf("error on posting message: %s", err)
	}

	var posted struct {
		MessageID string `json:"messageId"`
	}
	if err := unwrapData(resp, &posted); err != nil {
		return nodeapi.MessageID{}, err
	}
	return nodeapi.MessageIDFromHex(posted.MessageID)
}

func (s *service) GetMessage(id nodeapi.MessageID) (*nodeapi.Message, error) {
	message := &messageJSON{}
	path := fmt.Sprintf("/api/v1/messages/%s", id.Hex())
	if err := s.getJSON(path, message); err != nil {
		return nil, fmt.Errorf("error on retrieving message: %s", err)
	}
	return message.toMessage()
}

func (s *service) GetMessageMetadata(id nodeapi.MessageID) (*nodeapi.MessageMetadata, error) {
	metadata := &metadataJSON{}
	path := fmt.Sprintf("/api/v1/messages/%s/metadata", id.Hex())
	if err := s.getJSON(path, metadata); err != nil {
		return nil, fmt.Errorf("error on retrieving message metadata: %s", err)
	}

	messageID, err := nodeapi.MessageIDFromHex(metadata.MessageID)
	if err != nil {
		return nil, err
	}
	return &nodeapi.MessageMetadata{
		MessageID:                  messageID,
		IsSolid:                    metadata.IsSolid,
		ShouldPromote:              metadata.ShouldPromote,
		ShouldReattach:             metadata.ShouldReattach,
		ReferencedByMilestoneIndex: metadata.ReferencedByMilestoneIndex,
	}, nil
}

func (s *service) GetMessageIDsByIndex(index string) ([]nodeapi.MessageID, error) {
	if len(index) <= 0 {
		return nil, nodeapi.ErrEmptyIndexationKey
	}

	var found struct {
		MessageIDs []string `json:"messageIds"`
	}
	path := fmt.Sprintf("/api/v1/messages?index=%s", url.QueryEscape(index))
	if err := s.getJSON(path, &found); err != nil {
		return nil, fmt.Errorf("error on retrieving message ids: %s", err)
	}

	ids := make([]nodeapi.MessageID, 0, len(found.MessageIDs))
	for _, rawID := range found.MessageIDs {
		id, err := nodeapi.MessageIDFromHex(rawID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
