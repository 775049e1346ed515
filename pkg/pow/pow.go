package pow

import (
	"encoding/binary"
	"errors"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrProofOfWorkFailed ...
var ErrProofOfWorkFailed = errors.New("proof of work could not complete")

// Provider computes the nonce that makes a serialized message meet the
// network difficulty.
type Provider interface {
	// Nonce returns a nonce such that the payload followed by the nonce
	// bytes scores at least targetScore. Providers deferring the work to
	// the node return 0.
	Nonce(payload []byte, targetScore float64) (uint64, error)
}

// NewProvider returns the provider matching the local proof-of-work
// setting: a multi-worker local miner, or the remote provider that leaves
// the work to the issuing node.
func NewProvider(localPoW bool) Provider {
	if localPoW {
		return NewLocalProvider()
	}
	return RemoteProvider{}
}

// LocalProvider searches the nonce space with one worker per available
// CPU, each scanning a disjoint region. The first qualifying nonce wins.
type LocalProvider struct {
	numWorkers int
}

// NewLocalProvider returns a local provider sized on the available CPUs.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{numWorkers: runtime.NumCPU()}
}

func (p *LocalProvider) Nonce(payload []byte, targetScore float64) (uint64, error) {
	workers := p.numWorkers
	if workers <= 0 {
		workers = 1
	}
	regionSize := math.MaxUint64 / uint64(workers)

	var done uint32
	nonceChan := make(chan uint64, workers)
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		start := uint64(i) * regionSize
		end := start + regionSize
		if i == workers-1 {
			end = math.MaxUint64
		}

		wg.Add(1)
		go func(start, end uint64) {
			defer wg.Done()

			// every worker owns its buffer, the nonce is rewritten in
			// place on each attempt
			buf := make([]byte, len(payload)+nonceBytesLength)
			copy(buf, payload)

			for nonce := start; nonce < end; nonce++ {
				if atomic.LoadUint32(&done) == 1 {
					return
				}
				binary.LittleEndian.PutUint64(buf[len(payload):], nonce)
				if Score(buf) >= targetScore {
					if atomic.CompareAndSwapUint32(&done, 0, 1) {
						nonceChan <- nonce
					}
					return
				}
			}
		}(start, end)
	}

	wg.Wait()
	close(nonceChan)

	nonce, ok := <-nonceChan
	if !ok {
		return 0, ErrProofOfWorkFailed
	}
	return nonce, nil
}

// RemoteProvider signals the issuing node to perform the work itself by
// always returning the zero nonce.
type RemoteProvider struct{}

func (RemoteProvider) Nonce(_ []byte, _ float64) (uint64, error) {
	return 0, nil
}
