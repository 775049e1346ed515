package client

import (
	"github.com/tanglekit/tangle-client/pkg/wallet"
)

// addressBatchSize is the number of consecutive addresses derived per scan
// round, the usual gap limit.
const addressBatchSize = 20

// UnspentAddressOpts is the struct given to the GetUnspentAddress method.
// Path is mandatory, StartIndex defaults to 0.
type UnspentAddressOpts struct {
	Path       string
	StartIndex uint32
}

// GetUnspentAddress scans the wallet chain identified by (seed, path) and
// returns the first address with zero balance together with its absolute
// derivation index. Addresses with balance are assumed to form a
// contiguous prefix, so a zero balance marks the end of the used range.
// The scan has no upper bound: if balances never return to zero it does
// not terminate on its own, which is the caller's risk to manage.
func (c *Client) GetUnspentAddress(
	seed []byte, opts UnspentAddressOpts,
) (wallet.Address, uint32, error) {
	if len(opts.Path) <= 0 {
		return wallet.Address{}, 0, ErrMissingPath
	}
	path, err := wallet.ParseDerivationPath(opts.Path)
	if err != nil {
		return wallet.Address{}, 0, err
	}

	index := opts.StartIndex
	for {
		addresses, err := wallet.DeriveAddresses(seed, path, index, addressBatchSize)
		if err != nil {
			return wallet.Address{}, 0, err
		}

		for _, address := range addresses {
			balance, err := c.api.GetBalance(address.Hex())
			if err != nil {
				// any failing balance query aborts the whole scan
				return wallet.Address{}, 0, err
			}
			if balance == 0 {
				return address, index, nil
			}
			index++
		}
	}
}

// AddressRangeOpts is the struct given to the FindAddresses method.
type AddressRangeOpts struct {
	Path  string
	Start uint32
	End   uint32
}

func (o AddressRangeOpts) validate() error {
	if len(o.Path) <= 0 {
		return ErrMissingPath
	}
	if o.End <= o.Start {
		return ErrInvalidRange
	}
	return nil
}

// FindAddresses derives the addresses in [Start, End) of the wallet chain,
// regardless of whether they have ever been used. No network activity.
func (c *Client) FindAddresses(
	seed []byte, opts AddressRangeOpts,
) ([]wallet.Address, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	path, err := wallet.ParseDerivationPath(opts.Path)
	if err != nil {
		return nil, err
	}
	return wallet.DeriveAddresses(seed, path, opts.Start, opts.End-opts.Start)
}
