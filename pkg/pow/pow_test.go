package pow

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withNonce(payload []byte, nonce uint64) []byte {
	buf := make([]byte, len(payload)+nonceBytesLength)
	copy(buf, payload)
	binary.LittleEndian.PutUint64(buf[len(payload):], nonce)
	return buf
}

func TestLocalNonceMeetsTargetScore(t *testing.T) {
	payload := []byte("a message essence to be mined")
	targetScore := 10.0

	provider := NewLocalProvider()
	nonce, err := provider.Nonce(payload, targetScore)
	require.NoError(t, err)

	score := Score(withNonce(payload, nonce))
	assert.GreaterOrEqual(t, score, targetScore)
}

func TestLocalNonceIsStableForTrivialTarget(t *testing.T) {
	payload := []byte("whatever")

	provider := NewLocalProvider()
	// any nonce qualifies for a non-positive target, workers report the
	// first one of their region
	nonce, err := provider.Nonce(payload, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, Score(withNonce(payload, nonce)), 0.0)
}

func TestRemoteProviderAlwaysReturnsZero(t *testing.T) {
	provider := RemoteProvider{}

	nonce, err := provider.Nonce([]byte("payload"), 4000)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nonce)
}

func TestNewProviderHonorsLocalPoWFlag(t *testing.T) {
	assert.IsType(t, &LocalProvider{}, NewProvider(true))
	assert.IsType(t, RemoteProvider{}, NewProvider(false))
}

func TestScoreIsDeterministic(t *testing.T) {
	data := []byte("same bytes, same score")

	assert.Equal(t, Score(data), Score(data))
}

func TestScoreIsPositive(t *testing.T) {
	assert.Greater(t, Score([]byte("x")), 0.0)
	assert.Greater(t, Score(make([]byte, 1024)), 0.0)
}
