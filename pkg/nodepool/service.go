package nodepool

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultIntervalInMilliseconds = 60000
	defaultProbesPerSecond        = 10
	defaultProbeTokenBurst        = 1
)

// Opts defines the parameters needed for creating a pool service with the
// NewService method.
type Opts struct {
	Nodes                  []string
	IntervalInMilliseconds int
	HealthChecker          HealthChecker
	ProbesPerSecond        int
	ProbeTokenBurst        int
}

func (o Opts) validate() error {
	if len(o.Nodes) <= 0 {
		return ErrEmptyNodeList
	}
	if o.HealthChecker == nil {
		return ErrNullHealthChecker
	}
	return nil
}

type nodePool struct {
	nodes       []string
	interval    time.Duration
	checker     HealthChecker
	rateLimiter *rate.Limiter

	lock    *sync.RWMutex
	healthy map[string]struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	stopChan  chan struct{}
	wg        *sync.WaitGroup
}

// NewService returns a pool synchronizer that is ready to watch over the
// given node list. Use Start and Stop methods to manage it.
func NewService(opts Opts) (Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	interval := opts.IntervalInMilliseconds
	if interval <= 0 {
		interval = defaultIntervalInMilliseconds
	}
	probesPerSecond := opts.ProbesPerSecond
	if probesPerSecond <= 0 {
		probesPerSecond = defaultProbesPerSecond
	}
	tokenBurst := opts.ProbeTokenBurst
	if tokenBurst <= 0 {
		tokenBurst = defaultProbeTokenBurst
	}

	return &nodePool{
		nodes:       opts.Nodes,
		interval:    time.Duration(interval) * time.Millisecond,
		checker:     opts.HealthChecker,
		rateLimiter: rate.NewLimiter(rate.Limit(probesPerSecond), tokenBurst),
		lock:        &sync.RWMutex{},
		healthy:     map[string]struct{}{},
		stopChan:    make(chan struct{}),
		wg:          &sync.WaitGroup{},
	}, nil
}

func (p *nodePool) Start() {
	p.startOnce.Do(func() {
		// the first sync happens before the loop is spawned so that the
		// pool is usable as soon as Start returns
		p.syncNodes()

		p.wg.Add(1)
		go p.syncLoop()
	})
}

func (p *nodePool) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
		p.wg.Wait()
		log.Debug("stopped node pool synchronizer")
	})
}

func (p *nodePool) GetNode() (string, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	for node := range p.healthy {
		return node, nil
	}
	return "", ErrEmptyPool
}

func (p *nodePool) ListNodes() []string {
	p.lock.RLock()
	defer p.lock.RUnlock()

	nodes := make([]string, 0, len(p.healthy))
	for node := range p.healthy {
		nodes = append(nodes, node)
	}
	return nodes
}

func (p *nodePool) syncLoop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.syncNodes()
		case <-p.stopChan:
			return
		}
	}
}

// syncNodes probes every configured node and replaces the healthy set with
// exactly the subset that answered, possibly the empty set. Probe failures
// only exclude the single node, they never abort the cycle.
func (p *nodePool) syncNodes() {
	healthy := map[string]struct{}{}
	lock := &sync.Mutex{}
	wg := &sync.WaitGroup{}

	for _, node := range p.nodes {
		if err := p.rateLimiter.Wait(context.Background()); err != nil {
			log.WithError(err).Debug("probe rate limiter interrupted")
			break
		}

		wg.Add(1)
		go func(node string) {
			defer wg.Done()

			ok, err := p.checker.CheckHealth(node)
			if err != nil {
				log.Debugf("node %s excluded from pool: %v", node, err)
				return
			}
			if !ok {
				log.Debugf("node %s reported unhealthy", node)
				return
			}

			lock.Lock()
			healthy[node] = struct{}{}
			lock.Unlock()
		}(node)
	}
	wg.Wait()

	p.lock.Lock()
	p.healthy = healthy
	p.lock.Unlock()

	log.Debugf("node pool synced, %d of %d nodes healthy", len(healthy), len(p.nodes))
}
