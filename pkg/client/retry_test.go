package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tanglekit/tangle-client/pkg/nodeapi"
	"github.com/tanglekit/tangle-client/pkg/pow"
)

func newTestClient(api nodeapi.Service) *Client {
	return &Client{
		api:         api,
		powProvider: pow.RemoteProvider{},
		targetScore: 1,
	}
}

func testID(b byte) nodeapi.MessageID {
	var id nodeapi.MessageID
	for i := range id {
		id[i] = b
	}
	return id
}

func testInfo() *nodeapi.NodeInfo {
	return &nodeapi.NodeInfo{
		Name:      "testnode",
		Version:   "1.0.0",
		NetworkID: "testnet1",
		IsHealthy: true,
	}
}

func boolPtr(v bool) *bool { return &v }

func TestRetryWithoutNeedDoesNotPost(t *testing.T) {
	api := &mockNodeAPI{}
	id := testID(0x01)
	api.On("GetMessageMetadata", id).Return(&nodeapi.MessageMetadata{
		MessageID:      id,
		ShouldPromote:  boolPtr(false),
		ShouldReattach: boolPtr(false),
	}, nil)

	c := newTestClient(api)
	_, _, err := c.Retry(id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoNeedPromoteOrReattach))
	api.AssertNotCalled(t, "PostMessage")
	api.AssertNotCalled(t, "GetTips")
}

func TestRetryDelegatesToPromote(t *testing.T) {
	api := &mockNodeAPI{}
	id := testID(0x02)
	newID := testID(0x03)
	tips := nodeapi.Tips{Tip1: testID(0x0a), Tip2: testID(0x0b)}

	api.On("GetMessageMetadata", id).Return(&nodeapi.MessageMetadata{
		MessageID:     id,
		ShouldPromote: boolPtr(true),
	}, nil)
	api.On("GetTips").Return(tips, nil)
	api.On("GetInfo").Return(testInfo(), nil)
	api.On("PostMessage", mock.Anything).Return(newID, nil)

	c := newTestClient(api)
	gotID, message, err := c.Retry(id)

	require.NoError(t, err)
	assert.Equal(t, newID, gotID)
	assert.Equal(t, tips.Tip1, message.Parent1)
	assert.Equal(t, id, message.Parent2)
	assert.Nil(t, message.Payload)
}

func TestPromoteAlwaysFetchesFreshTips(t *testing.T) {
	api := &mockNodeAPI{}
	id := testID(0x04)
	firstTips := nodeapi.Tips{Tip1: testID(0x10), Tip2: testID(0x11)}
	secondTips := nodeapi.Tips{Tip1: testID(0x20), Tip2: testID(0x21)}

	api.On("GetTips").Return(firstTips, nil).Once()
	api.On("GetTips").Return(secondTips, nil).Once()
	api.On("GetInfo").Return(testInfo(), nil)
	api.On("PostMessage", mock.Anything).Return(testID(0xff), nil)

	c := newTestClient(api)

	_, first, err := c.Promote(id)
	require.NoError(t, err)
	_, second, err := c.Promote(id)
	require.NoError(t, err)

	assert.Equal(t, firstTips.Tip1, first.Parent1)
	assert.Equal(t, secondTips.Tip1, second.Parent1)
	assert.NotEqual(t, first.Parent1, second.Parent1)
}

func TestReattachWithoutPayloadFails(t *testing.T) {
	api := &mockNodeAPI{}
	id := testID(0x05)
	api.On("GetMessage", id).Return(&nodeapi.Message{
		NetworkID: 42,
		Parent1:   testID(0x30),
		Parent2:   testID(0x31),
	}, nil)

	c := newTestClient(api)
	_, _, err := c.Reattach(id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingPayload))
	api.AssertNotCalled(t, "GetTips")
	api.AssertNotCalled(t, "PostMessage")
}

func TestReattachReusesPayloadUnderFreshParents(t *testing.T) {
	api := &mockNodeAPI{}
	id := testID(0x06)
	newID := testID(0x07)
	tips := nodeapi.Tips{Tip1: testID(0x40), Tip2: testID(0x41)}
	payload := &nodeapi.IndexationPayload{Index: "orders", Data: []byte("pending")}

	api.On("GetMessage", id).Return(&nodeapi.Message{
		NetworkID: 42,
		Parent1:   testID(0x50),
		Parent2:   testID(0x51),
		Payload:   payload,
	}, nil)
	api.On("GetTips").Return(tips, nil)
	api.On("GetInfo").Return(testInfo(), nil)
	api.On("PostMessage", mock.Anything).Return(newID, nil)

	c := newTestClient(api)
	gotID, message, err := c.Reattach(id)

	require.NoError(t, err)
	assert.Equal(t, newID, gotID)
	assert.Equal(t, tips.Tip1, message.Parent1)
	assert.Equal(t, tips.Tip2, message.Parent2)
	assert.Equal(t, payload, message.Payload)
}
