package nodepool

// HealthChecker performs a single reachability check against a node.
type HealthChecker interface {
	CheckHealth(nodeURL string) (bool, error)
}

// Service is the interface for the node pool synchronizer. It owns the set
// of currently healthy nodes and keeps it fresh by re-probing the full
// configured list on a fixed interval.
type Service interface {
	// Start runs one synchronous probe cycle, then spawns the background
	// sync loop. Calling Start more than once is a no-op.
	Start()
	// Stop signals the sync loop to terminate and blocks until it has. An
	// in-flight healthy-set replacement is allowed to complete, a pending
	// interval wait is not.
	Stop()
	// GetNode returns one arbitrary healthy node, or ErrEmptyPool if no
	// node answered the last probe cycle. Callers must not assume the same
	// node is returned across calls.
	GetNode() (string, error)
	// ListNodes returns a point-in-time snapshot of the healthy set.
	ListNodes() []string
}
