package client

import (
	"encoding/binary"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"

	"github.com/tanglekit/tangle-client/pkg/nodeapi"
	"github.com/tanglekit/tangle-client/pkg/nodeapi/rest"
	"github.com/tanglekit/tangle-client/pkg/nodepool"
	"github.com/tanglekit/tangle-client/pkg/pow"
)

// defaultTargetScore is the minimum proof-of-work score accepted by the
// public network.
const defaultTargetScore = 4000

// Opts defines the parameters needed for creating a Client with the
// NewClient method.
type Opts struct {
	// Nodes is the full list of node URLs the client may talk to. Which
	// of them are actually used depends on their health.
	Nodes []string
	// SyncIntervalInMilliseconds is the delay between two healthy-set
	// refresh cycles.
	SyncIntervalInMilliseconds int
	// LocalPoW selects whether the proof of work is computed locally or
	// left to the issuing node.
	LocalPoW bool
	// TargetScore overrides the proof-of-work difficulty. Zero means the
	// network default.
	TargetScore float64
	// ProbesPerSecond and ProbeTokenBurst pace the health probes issued
	// by the pool synchronizer.
	ProbesPerSecond int
	ProbeTokenBurst int
}

// Client is the single logical entry point to a network of independent
// ledger nodes. It owns the background pool synchronizer and guarantees
// its orderly shutdown through Close.
type Client struct {
	pool        nodepool.Service
	api         nodeapi.Service
	powProvider pow.Provider
	targetScore float64

	closeOnce sync.Once
}

type restHealthChecker struct{}

func (restHealthChecker) CheckHealth(nodeURL string) (bool, error) {
	return rest.GetNodeHealth(nodeURL)
}

// NewClient returns a Client whose node pool has been synced once and is
// being kept fresh in background. Callers must Close the client when done
// with it.
func NewClient(opts Opts) (*Client, error) {
	pool, err := nodepool.NewService(nodepool.Opts{
		Nodes:                  opts.Nodes,
		IntervalInMilliseconds: opts.SyncIntervalInMilliseconds,
		HealthChecker:          restHealthChecker{},
		ProbesPerSecond:        opts.ProbesPerSecond,
		ProbeTokenBurst:        opts.ProbeTokenBurst,
	})
	if err != nil {
		return nil, err
	}

	api, err := rest.NewService(rest.Opts{NodeProvider: pool.GetNode})
	if err != nil {
		return nil, err
	}

	targetScore := opts.TargetScore
	if targetScore <= 0 {
		targetScore = defaultTargetScore
	}

	pool.Start()
	log.Debugf("client started with %d configured nodes", len(opts.Nodes))

	return &Client{
		pool:        pool,
		api:         api,
		powProvider: pow.NewProvider(opts.LocalPoW),
		targetScore: targetScore,
	}, nil
}

// Close stops the background pool synchronizer and waits for it to
// acknowledge. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.pool.Stop()
	})
}

// GetNode returns one healthy node from the current pool snapshot.
func (c *Client) GetNode() (string, error) {
	return c.pool.GetNode()
}

// ListNodes returns the current healthy-set snapshot.
func (c *Client) ListNodes() []string {
	return c.pool.ListNodes()
}

// GetHealth returns the health state of one healthy node, as reported by
// the node itself.
func (c *Client) GetHealth() (bool, error) {
	return c.api.GetHealth()
}

// GetInfo returns the infos of one healthy node.
func (c *Client) GetInfo() (*nodeapi.NodeInfo, error) {
	return c.api.GetInfo()
}

// GetTips returns a fresh pair of tips.
func (c *Client) GetTips() (nodeapi.Tips, error) {
	return c.api.GetTips()
}

// GetMilestone returns the milestone at the given index.
func (c *Client) GetMilestone(index uint64) (*nodeapi.MilestoneMetadata, error) {
	return c.api.GetMilestone(index)
}

// GetNetworkID derives the numeric network id from the network id string
// reported by the node: first 8 bytes of its blake2b-256 digest read as a
// little-endian unsigned integer. Deterministic for a given network,
// recomputed on every call so a pool change cannot serve a stale value.
func (c *Client) GetNetworkID() (uint64, error) {
	info, err := c.api.GetInfo()
	if err != nil {
		return 0, err
	}

	digest := blake2b.Sum256([]byte(info.NetworkID))
	return binary.LittleEndian.Uint64(digest[:8]), nil
}

// GetPoWProvider returns the proof-of-work provider matching the client
// configuration.
func (c *Client) GetPoWProvider() pow.Provider {
	return c.powProvider
}

// buildMessage assembles a message with the given parents and optional
// payload and solves its proof of work. Construction invariants violated
// here surface as ErrTransaction.
func (c *Client) buildMessage(
	networkID uint64, parent1, parent2 nodeapi.MessageID,
	payload *nodeapi.IndexationPayload,
) (*nodeapi.Message, error) {
	var nullID nodeapi.MessageID
	if networkID == 0 {
		return nil, ErrTransaction
	}
	if parent1 == nullID || parent2 == nullID || parent1 == parent2 {
		return nil, ErrTransaction
	}

	message := &nodeapi.Message{
		NetworkID: networkID,
		Parent1:   parent1,
		Parent2:   parent2,
		Payload:   payload,
	}

	nonce, err := c.powProvider.Nonce(message.Essence(), c.targetScore)
	if err != nil {
		return nil, err
	}
	message.Nonce = nonce

	return message, nil
}
