package nodeapi

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// MessageIDLength is the byte length of a message id.
const MessageIDLength = 32

// MessageID is the unique identifier of a message in the ledger.
type MessageID [MessageIDLength]byte

// MessageIDFromHex parses a message id from its hex representation.
func MessageIDFromHex(s string) (MessageID, error) {
	var id MessageID
	buf, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: %s", ErrInvalidMessageID, err)
	}
	if len(buf) != MessageIDLength {
		return id, fmt.Errorf(
			"%w: must be %d bytes in hex format", ErrInvalidMessageID, MessageIDLength,
		)
	}
	copy(id[:], buf)
	return id, nil
}

// Hex returns the hex representation of the message id.
func (id MessageID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id MessageID) String() string {
	return id.Hex()
}

// IndexationPayload is the only payload type carried by messages built by
// this client. The binary codec for value transactions lives outside of
// this module.
type IndexationPayload struct {
	Index string
	Data  []byte
}

// Message is a vertex of the ledger. Parents reference two existing
// messages, the nonce is the proof-of-work solution for the serialized
// message.
type Message struct {
	NetworkID uint64
	Parent1   MessageID
	Parent2   MessageID
	Payload   *IndexationPayload
	Nonce     uint64
}

// Essence returns the serialization of the message without its nonce. It
// is the input of the proof-of-work search: the nonce is appended to these
// bytes when scoring.
func (m *Message) Essence() []byte {
	size := 8 + 2*MessageIDLength
	if m.Payload != nil {
		size += len(m.Payload.Index) + len(m.Payload.Data)
	}
	buf := make([]byte, 0, size)

	var networkID [8]byte
	binary.LittleEndian.PutUint64(networkID[:], m.NetworkID)
	buf = append(buf, networkID[:]...)
	buf = append(buf, m.Parent1[:]...)
	buf = append(buf, m.Parent2[:]...)
	if m.Payload != nil {
		buf = append(buf, []byte(m.Payload.Index)...)
		buf = append(buf, m.Payload.Data...)
	}
	return buf
}

// NodeInfo is the static info reported by a node.
type NodeInfo struct {
	Name                 string
	Version              string
	NetworkID            string
	IsHealthy            bool
	LatestMilestoneIndex uint64
}

// MessageMetadata is the node-reported state of a message. ShouldPromote
// and ShouldReattach are optional hints, absent when the node has no
// opinion yet.
type MessageMetadata struct {
	MessageID                  MessageID
	IsSolid                    bool
	ShouldPromote              *bool
	ShouldReattach             *bool
	ReferencedByMilestoneIndex *uint64
}

// Tips is a pair of message ids currently usable as parents.
type Tips struct {
	Tip1 MessageID
	Tip2 MessageID
}

// OutputID identifies a transaction output by the transaction that created
// it and its index within that transaction.
type OutputID struct {
	TransactionID string
	Index         uint16
}

func (o OutputID) String() string {
	var index [2]byte
	binary.LittleEndian.PutUint16(index[:], o.Index)
	return o.TransactionID + hex.EncodeToString(index[:])
}

// OutputMetadata is a transaction output together with its spend state.
type OutputMetadata struct {
	MessageID     string
	TransactionID string
	OutputIndex   uint16
	IsSpent       bool
	Amount        uint64
	Address       string
}

// MilestoneMetadata is a milestone as reported by a node.
type MilestoneMetadata struct {
	Index       uint64
	MessageID   string
	Timestamp   int64
	InclusionID string
}
