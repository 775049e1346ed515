package rest

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/tanglekit/tangle-client/pkg/nodeapi"
)

const (
	indexationPayloadType = 2
	ed25519AddressType    = 1
	sigLockedOutputType   = 0
)

/**** MESSAGE ****/

// messageJSON is the wire format of a message. Unsigned 64 bit values
// travel as decimal strings, ids and raw data as hex.
type messageJSON struct {
	NetworkID string       `json:"networkId"`
	Parent1   string       `json:"parent1MessageId"`
	Parent2   string       `json:"parent2MessageId"`
	Payload   *payloadJSON `json:"payload"`
	Nonce     string       `json:"nonce"`
}

type payloadJSON struct {
	Type  int    `json:"type"`
	Index string `json:"index"`
	Data  string `json:"data"`
}

func newMessageJSON(message *nodeapi.Message) *messageJSON {
	m := &messageJSON{
		NetworkID: strconv.FormatUint(message.NetworkID, 10),
		Parent1:   message.Parent1.Hex(),
		Parent2:   message.Parent2.Hex(),
		Nonce:     strconv.FormatUint(message.Nonce, 10),
	}
	if message.Payload != nil {
		m.Payload = &payloadJSON{
			Type:  indexationPayloadType,
			Index: message.Payload.Index,
			Data:  hex.EncodeToString(message.Payload.Data),
		}
	}
	return m
}

func (m *messageJSON) toMessage() (*nodeapi.Message, error) {
	networkID, err := strconv.ParseUint(m.NetworkID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid network id: %s", err)
	}
	nonce, err := strconv.ParseUint(m.Nonce, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid nonce: %s", err)
	}
	parent1, err := nodeapi.MessageIDFromHex(m.Parent1)
	if err != nil {
		return nil, err
	}
	parent2, err := nodeapi.MessageIDFromHex(m.Parent2)
	if err != nil {
		return nil, err
	}

	message := &nodeapi.Message{
		NetworkID: networkID,
		Parent1:   parent1,
		Parent2:   parent2,
		Nonce:     nonce,
	}
	if m.Payload != nil {
		data, err := hex.DecodeString(m.Payload.Data)
		if err != nil {
			return nil, fmt.Errorf("invalid payload data: %s", err)
		}
		message.Payload = &nodeapi.IndexationPayload{
			Index: m.Payload.Index,
			Data:  data,
		}
	}
	return message, nil
}

/**** NODE ****/

type nodeInfoJSON struct {
	Name                 string `json:"name"`
	Version              string `json:"version"`
	NetworkID            string `json:"networkId"`
	IsHealthy            bool   `json:"isHealthy"`
	LatestMilestoneIndex uint64 `json:"latestMilestoneIndex"`
}

type tipsJSON struct {
	Tip1 string `json:"tip1MessageId"`
	Tip2 string `json:"tip2MessageId"`
}

type metadataJSON struct {
	MessageID                  string  `json:"messageId"`
	IsSolid                    bool    `json:"isSolid"`
	ShouldPromote              *bool   `json:"shouldPromote"`
	ShouldReattach             *bool   `json:"shouldReattach"`
	ReferencedByMilestoneIndex *uint64 `json:"referencedByMilestoneIndex"`
}

type milestoneJSON struct {
	Index     uint64 `json:"index"`
	MessageID string `json:"messageId"`
	Timestamp int64  `json:"timestamp"`
}

/**** ADDRESSES AND OUTPUTS ****/

type balanceJSON struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

type outputIDsJSON struct {
	OutputIDs []string `json:"outputIds"`
}

const transactionIDHexLength = 64

// parseOutputID splits an output id into the creating transaction id and
// the little-endian encoded output index appended to it.
func parseOutputID(rawID string) (nodeapi.OutputID, error) {
	if len(rawID) != transactionIDHexLength+4 {
		return nodeapi.OutputID{}, fmt.Errorf("invalid output id %s", rawID)
	}
	indexBytes, err := hex.DecodeString(rawID[transactionIDHexLength:])
	if err != nil {
		return nodeapi.OutputID{}, fmt.Errorf("invalid output id %s: %s", rawID, err)
	}
	return nodeapi.OutputID{
		TransactionID: rawID[:transactionIDHexLength],
		Index:         uint16(indexBytes[0]) | uint16(indexBytes[1])<<8,
	}, nil
}

type rawOutputJSON struct {
	MessageID     string `json:"messageId"`
	TransactionID string `json:"transactionId"`
	OutputIndex   uint16 `json:"outputIndex"`
	IsSpent       bool   `json:"isSpent"`
	Output        struct {
		Type    int `json:"type"`
		Address struct {
			Type    int    `json:"type"`
			Address string `json:"address"`
		} `json:"address"`
		Amount uint64 `json:"amount"`
	} `json:"output"`
}
