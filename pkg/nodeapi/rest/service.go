package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sony/gobreaker"
	"github.com/tanglekit/tangle-client/pkg/circuitbreaker"
	"github.com/tanglekit/tangle-client/pkg/httputil"
	"github.com/tanglekit/tangle-client/pkg/nodeapi"
)

// ErrNullNodeProvider ...
var ErrNullNodeProvider = errors.New("node provider must not be null")

// NodeProvider returns the base URL of the node the next request should be
// sent to. It is how the service stays decoupled from the pool that tracks
// which nodes are healthy.
type NodeProvider func() (string, error)

// Opts defines the parameters needed for creating a rest service with the
// NewService method.
type Opts struct {
	NodeProvider NodeProvider
}

func (o Opts) validate() error {
	if o.NodeProvider == nil {
		return ErrNullNodeProvider
	}
	return nil
}

type service struct {
	nodeProvider NodeProvider
	cb           *gobreaker.CircuitBreaker
}

// NewService returns a new rest service as a nodeapi.Service interface.
// Every request picks a node through the provider and goes through a
// circuit breaker.
func NewService(opts Opts) (nodeapi.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &service{
		nodeProvider: opts.NodeProvider,
		cb:           circuitbreaker.NewCircuitBreaker(),
	}, nil
}

// GetNodeHealth performs a single reachability check against the given
// node. Unlike the Service methods it targets an explicit node and is not
// guarded by the circuit breaker, since the pool prober swallows failures
// on its own.
func GetNodeHealth(nodeURL string) (bool, error) {
	url := fmt.Sprintf("%s/health", strings.TrimSuffix(nodeURL, "/"))
	status, _, err := httputil.NewHTTPRequest("GET", url, "", nil)
	if err != nil {
		return false, err
	}
	return status == http.StatusOK, nil
}

func (s *service) get(path string, okStatus int) (string, error) {
	node, err := s.nodeProvider()
	if err != nil {
		return "", err
	}
	url := strings.TrimSuffix(node, "/") + path

	iResp, err := s.cb.Execute(func() (interface{}, error) {
		status, resp, err := httputil.NewHTTPRequest("GET", url, "", nil)
		if err != nil {
			return nil, err
		}
		if status != okStatus {
			return nil, fmt.Errorf("node returned status %d: %s", status, resp)
		}
		return resp, nil
	})
	if err != nil {
		return "", err
	}
	return iResp.(string), nil
}

func (s *service) post(path, body string, okStatus int) (string, error) {
	node, err := s.nodeProvider()
	if err != nil {
		return "", err
	}
	url := strings.TrimSuffix(node, "/") + path

	iResp, err := s.cb.Execute(func() (interface{}, error) {
		status, resp, err := httputil.NewHTTPRequest(
			"POST", url, body,
			map[string]string{"Content-Type": "application/json"},
		)
		if err != nil {
			return nil, err
		}
		if status != okStatus {
			return nil, fmt.Errorf("node returned status %d: %s", status, resp)
		}
		return resp, nil
	})
	if err != nil {
		return "", err
	}
	return iResp.(string), nil
}

// getJSON issues a GET and decodes the "data" envelope every node response
// is wrapped into.
func (s *service) getJSON(path string, dest interface{}) error {
	resp, err := s.get(path, http.StatusOK)
	if err != nil {
		return err
	}
	return unwrapData(resp, dest)
}

func unwrapData(resp string, dest interface{}) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal([]byte(resp), &envelope); err != nil {
		return fmt.Errorf("invalid node response: %s", err)
	}
	return json.Unmarshal(envelope.Data, dest)
}
