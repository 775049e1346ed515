package rest

import (
	"fmt"

	"github.com/tanglekit/tangle-client/pkg/nodeapi"
)

func (s *service) GetHealth() (bool, error) {
	node, err := s.nodeProvider()
	if err != nil {
		return false, err
	}
	return GetNodeHealth(node)
}

func (s *service) GetInfo() (*nodeapi.NodeInfo, error) {
	info := &nodeInfoJSON{}
	if err := s.getJSON("/api/v1/info", info); err != nil {
		return nil, fmt.Errorf("error on retrieving node info: %s", err)
	}
	return &nodeapi.NodeInfo{
		Name:                 info.Name,
		Version:              info.Version,
		NetworkID:            info.NetworkID,
		IsHealthy:            info.IsHealthy,
		LatestMilestoneIndex: info.LatestMilestoneIndex,
	}, nil
}

func (s *service) GetTips() (nodeapi.Tips, error) {
	tips := &tipsJSON{}
	if err := s.getJSON("/api/v1/tips", tips); err != nil {
		return nodeapi.Tips{}, fmt.Errorf("error on retrieving tips: %s", err)
	}

	tip1, err := nodeapi.MessageIDFromHex(tips.Tip1)
	if err != nil {
		return nodeapi.Tips{}, err
	}
	tip2, err := nodeapi.MessageIDFromHex(tips.Tip2)
	if err != nil {
		return nodeapi.Tips{}, err
	}
	return nodeapi.Tips{Tip1: tip1, Tip2: tip2}, nil
}

func (s *service) GetMilestone(index uint64) (*nodeapi.MilestoneMetadata, error) {
	milestone := &milestoneJSON{}
	path := fmt.Sprintf("/api/v1/milestones/%d", index)
	if err := s.getJSON(path, milestone); err != nil {
		return nil, fmt.Errorf("error on retrieving milestone: %s", err)
	}
	return &nodeapi.MilestoneMetadata{
		Index:     milestone.Index,
		MessageID: milestone.MessageID,
		Timestamp: milestone.Timestamp,
	}, nil
}
