package nodeapi

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageIDFromHex(t *testing.T) {
	raw := strings.Repeat("ab", MessageIDLength)

	id, err := MessageIDFromHex(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.Hex())
}

func TestMessageIDFromHexRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"",
		"abcd",
		strings.Repeat("ab", MessageIDLength+1),
		strings.Repeat("zz", MessageIDLength),
	}

	for _, raw := range tests {
		_, err := MessageIDFromHex(raw)
		assert.True(t, errors.Is(err, ErrInvalidMessageID))
	}
}

func TestEssenceLayout(t *testing.T) {
	parent1 := MessageID{}
	parent1[0] = 0x01
	parent2 := MessageID{}
	parent2[0] = 0x02
	message := &Message{
		NetworkID: 0x0102030405060708,
		Parent1:   parent1,
		Parent2:   parent2,
		Payload:   &IndexationPayload{Index: "orders", Data: []byte{0xff}},
	}

	essence := message.Essence()
	require.Len(t, essence, 8+2*MessageIDLength+len("orders")+1)

	assert.Equal(t, uint64(0x0102030405060708), binary.LittleEndian.Uint64(essence[:8]))
	assert.Equal(t, parent1[:], essence[8:8+MessageIDLength])
	assert.Equal(t, parent2[:], essence[8+MessageIDLength:8+2*MessageIDLength])
	assert.Equal(t, []byte("orders\xff"), essence[8+2*MessageIDLength:])
}

func TestEssenceWithoutPayload(t *testing.T) {
	message := &Message{NetworkID: 1}
	assert.Len(t, message.Essence(), 8+2*MessageIDLength)
}

func TestEssenceIgnoresNonce(t *testing.T) {
	withNonce := &Message{NetworkID: 1, Nonce: 181}
	withoutNonce := &Message{NetworkID: 1}
	assert.Equal(t, withoutNonce.Essence(), withNonce.Essence())
}

func TestOutputIDStringAppendsLittleEndianIndex(t *testing.T) {
	id := OutputID{TransactionID: strings.Repeat("aa", 32), Index: 1}
	assert.Equal(t, strings.Repeat("aa", 32)+"0100", id.String())
}
