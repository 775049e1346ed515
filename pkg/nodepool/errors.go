package nodepool

import "errors"

var (
	// ErrEmptyPool ...
	ErrEmptyPool = errors.New("healthy node pool is empty")
	// ErrEmptyNodeList ...
	ErrEmptyNodeList = errors.New("node list must not be empty")
	// ErrNullHealthChecker ...
	ErrNullHealthChecker = errors.New("health checker must not be null")
)
