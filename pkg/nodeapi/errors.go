package nodeapi

import "errors"

var (
	// ErrInvalidMessageID ...
	ErrInvalidMessageID = errors.New("message id must be a 32 byte array in hex format")
	// ErrInvalidAddressType ...
	ErrInvalidAddressType = errors.New("invalid parameter: address type")
	// ErrEmptyIndexationKey ...
	ErrEmptyIndexationKey = errors.New("indexation key must not be empty")
)
