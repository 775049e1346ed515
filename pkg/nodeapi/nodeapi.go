package nodeapi

// Service is the representation of the REST API exposed by every ledger
// node. It allows to fetch messages, outputs and balances, and to submit
// new messages to the network. Implementations target one logical node at
// a time; which physical node answers a given call is up to them.
type Service interface {
	// GetHealth returns whether the queried node considers itself healthy.
	GetHealth() (bool, error)
	// GetInfo returns the node infos, network id string included.
	GetInfo() (*NodeInfo, error)
	// GetTips returns a pair of message ids usable as parents for a new
	// message. Tips go stale quickly, callers must fetch them right before
	// building a message.
	GetTips() (Tips, error)
	// PostMessage submits the given message and returns the id assigned by
	// the node.
	PostMessage(message *Message) (MessageID, error)
	// GetMessage fetches a message by its id.
	GetMessage(id MessageID) (*Message, error)
	// GetMessageMetadata returns the mutable, node-reported state of the
	// message, namely the promotion/reattachment hints.
	GetMessageMetadata(id MessageID) (*MessageMetadata, error)
	// GetMessageIDsByIndex returns the ids of all messages carrying the
	// given indexation key.
	GetMessageIDsByIndex(index string) ([]MessageID, error)
	// GetBalance returns the confirmed balance of the given address.
	GetBalance(address string) (uint64, error)
	// GetOutputIDs returns the ids of the outputs owned by the address.
	GetOutputIDs(address string) ([]OutputID, error)
	// GetOutput fetches a single output with its metadata.
	GetOutput(id OutputID) (*OutputMetadata, error)
	// GetMilestone returns the milestone at the given index.
	GetMilestone(index uint64) (*MilestoneMetadata, error)
}
