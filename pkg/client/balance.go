package client

import (
	"github.com/tanglekit/tangle-client/pkg/wallet"
)

// BalanceOpts is the struct given to the GetBalance method. Path is
// mandatory, StartIndex defaults to 0.
type BalanceOpts struct {
	Path       string
	StartIndex uint32
}

// GetBalance sums the balances of the used prefix of the wallet chain
// identified by (seed, path), scanning in gap-limit batches until the
// first zero-balance address is met.
func (c *Client) GetBalance(seed []byte, opts BalanceOpts) (uint64, error) {
	if len(opts.Path) <= 0 {
		return 0, ErrMissingPath
	}
	path, err := wallet.ParseDerivationPath(opts.Path)
	if err != nil {
		return 0, err
	}

	var total uint64
	index := opts.StartIndex
	for {
		addresses, err := wallet.DeriveAddresses(seed, path, index, addressBatchSize)
		if err != nil {
			return 0, err
		}

		for _, address := range addresses {
			balance, err := c.api.GetBalance(address.Hex())
			if err != nil {
				return 0, err
			}
			if balance == 0 {
				return total, nil
			}
			total += balance
			index++
		}
	}
}

// AddressBalancePair couples an address with its balance at query time.
type AddressBalancePair struct {
	Address string
	Balance uint64
}

// GetAddressBalances returns the balance of each given address. No seed is
// needed since the addresses are already known.
func (c *Client) GetAddressBalances(addresses []string) ([]AddressBalancePair, error) {
	chPairs := make(chan AddressBalancePair)
	chErr := make(chan error, 1)
	pairs := make([]AddressBalancePair, 0, len(addresses))

	for _, address := range addresses {
		go c.getAddressBalance(address, chPairs, chErr)

		select {
		case err := <-chErr:
			close(chErr)
			close(chPairs)
			return nil, err
		case pair := <-chPairs:
			pairs = append(pairs, pair)
		}
	}

	return pairs, nil
}

func (c *Client) getAddressBalance(
	address string,
	chPairs chan AddressBalancePair,
	chErr chan error,
) {
	balance, err := c.api.GetBalance(address)
	if err != nil {
		chErr <- err
		return
	}
	chPairs <- AddressBalancePair{Address: address, Balance: balance}
}
