package client

import (
	"github.com/stretchr/testify/mock"

	"github.com/tanglekit/tangle-client/pkg/nodeapi"
)

// Node API
type mockNodeAPI struct {
	mock.Mock
}

func (m *mockNodeAPI) GetHealth() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *mockNodeAPI) GetInfo() (*nodeapi.NodeInfo, error) {
	args := m.Called()

	var res *nodeapi.NodeInfo
	if a := args.Get(0); a != nil {
		res = a.(*nodeapi.NodeInfo)
	}
	return res, args.Error(1)
}

func (m *mockNodeAPI) GetTips() (nodeapi.Tips, error) {
	args := m.Called()
	return args.Get(0).(nodeapi.Tips), args.Error(1)
}

func (m *mockNodeAPI) PostMessage(message *nodeapi.Message) (nodeapi.MessageID, error) {
	args := m.Called(message)
	return args.Get(0).(nodeapi.MessageID), args.Error(1)
}

func (m *mockNodeAPI) GetMessage(id nodeapi.MessageID) (*nodeapi.Message, error) {
	args := m.Called(id)

	var res *nodeapi.Message
	if a := args.Get(0); a != nil {
		res = a.(*nodeapi.Message)
	}
	return res, args.Error(1)
}

func (m *mockNodeAPI) GetMessageMetadata(id nodeapi.MessageID) (*nodeapi.MessageMetadata, error) {
	args := m.Called(id)

	var res *nodeapi.MessageMetadata
	if a := args.Get(0); a != nil {
		res = a.(*nodeapi.MessageMetadata)
	}
	return res, args.Error(1)
}

func (m *mockNodeAPI) GetMessageIDsByIndex(index string) ([]nodeapi.MessageID, error) {
	args := m.Called(index)

	var res []nodeapi.MessageID
	if a := args.Get(0); a != nil {
		res = a.([]nodeapi.MessageID)
	}
	return res, args.Error(1)
}

func (m *mockNodeAPI) GetBalance(address string) (uint64, error) {
	args := m.Called(address)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockNodeAPI) GetOutputIDs(address string) ([]nodeapi.OutputID, error) {
	args := m.Called(address)

	var res []nodeapi.OutputID
	if a := args.Get(0); a != nil {
		res = a.([]nodeapi.OutputID)
	}
	return res, args.Error(1)
}

func (m *mockNodeAPI) GetOutput(id nodeapi.OutputID) (*nodeapi.OutputMetadata, error) {
	args := m.Called(id)

	var res *nodeapi.OutputMetadata
	if a := args.Get(0); a != nil {
		res = a.(*nodeapi.OutputMetadata)
	}
	return res, args.Error(1)
}

func (m *mockNodeAPI) GetMilestone(index uint64) (*nodeapi.MilestoneMetadata, error) {
	args := m.Called(index)

	var res *nodeapi.MilestoneMetadata
	if a := args.Get(0); a != nil {
		res = a.(*nodeapi.MilestoneMetadata)
	}
	return res, args.Error(1)
}
