package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:14265"}, GetNodes())
	assert.Equal(t, 60000, GetInt(SyncIntervalKey))
	assert.True(t, GetBool(LocalPoWKey))
	assert.Equal(t, float64(0), GetFloat(PoWTargetScoreKey))
	assert.Equal(t, 10, GetInt(ProbeLimitKey))
	assert.Equal(t, 4, GetInt(LogLevelKey))
	assert.NotEmpty(t, GetDatadir())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"empty node list", NodesKey, ""},
		{"malformed node url", NodesKey, "not a url"},
		{"null sync interval", SyncIntervalKey, 0},
		{"negative target score", PoWTargetScoreKey, -1.0},
		{"null request timeout", RequestTimeoutKey, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := vip.Get(tt.key)
			Set(tt.key, tt.value)
			defer Set(tt.key, previous)

			require.Error(t, validate())
		})
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validate())
}
