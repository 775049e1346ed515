package rest

import (
	"fmt"

	"github.com/tanglekit/tangle-client/pkg/nodeapi"
)

func (s *service) GetBalance(address string) (uint64, error) {
	balance := &balanceJSON{}
	path := fmt.Sprintf("/api/v1/addresses/%s", address)
	if err := s.getJSON(path, balance); err != nil {
		return 0, fmt.Errorf("error on retrieving balance: %s", err)
	}
	return balance.Balance, nil
}

func (s *service) GetOutputIDs(address string) ([]nodeapi.OutputID, error) {
	outputs := &outputIDsJSON{}
	path := fmt.Sprintf("/api/v1/addresses/%s/outputs", address)
	if err := s.getJSON(path, outputs); err != nil {
		return nil, fmt.Errorf("error on retrieving outputs: %s", err)
	}

	ids := make([]nodeapi.OutputID, 0, len(outputs.OutputIDs))
	for _, rawID := range outputs.OutputIDs {
		id, err := parseOutputID(rawID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *service) GetOutput(id nodeapi.OutputID) (*nodeapi.OutputMetadata, error) {
	raw := &rawOutputJSON{}
	path := fmt.Sprintf("/api/v1/outputs/%s", id.String())
	if err := s.getJSON(path, raw); err != nil {
		return nil, fmt.Errorf("error on retrieving output: %s", err)
	}

	if raw.Output.Type != sigLockedOutputType ||
		raw.Output.Address.Type != ed25519AddressType {
		return nil, nodeapi.ErrInvalidAddressType
	}

	return &nodeapi.OutputMetadata{
		MessageID:     raw.MessageID,
		TransactionID: raw.TransactionID,
		OutputIndex:   raw.OutputIndex,
		IsSpent:       raw.IsSpent,
		Amount:        raw.Output.Amount,
		Address:       raw.Output.Address.Address,
	}, nil
}
