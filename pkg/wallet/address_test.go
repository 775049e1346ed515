package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeed = []byte("a seed long enough to derive hierarchical keys from")

func testPath(t *testing.T) DerivationPath {
	t.Helper()
	path, err := ParseDerivationPath("m/0'/0'")
	require.NoError(t, err)
	return path
}

func TestDeriveAddressIsDeterministic(t *testing.T) {
	path := testPath(t)

	first, err := DeriveAddress(testSeed, path, 7)
	require.NoError(t, err)
	second, err := DeriveAddress(testSeed, path, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, Ed25519AddressType, first.Type())
	assert.Len(t, first.Bytes(), AddressLength)
}

func TestDeriveAddressVariesWithIndex(t *testing.T) {
	path := testPath(t)

	addr0, err := DeriveAddress(testSeed, path, 0)
	require.NoError(t, err)
	addr1, err := DeriveAddress(testSeed, path, 1)
	require.NoError(t, err)

	assert.NotEqual(t, addr0, addr1)
}

func TestDeriveAddressValidatesInput(t *testing.T) {
	path := testPath(t)

	_, err := DeriveAddress(nil, path, 0)
	assert.Equal(t, ErrNullSeed, err)

	_, err = DeriveAddress(testSeed, nil, 0)
	assert.Equal(t, ErrNullDerivationPath, err)
}

func TestDeriveAddressesMatchesSingleDerivation(t *testing.T) {
	path := testPath(t)

	addresses, err := DeriveAddresses(testSeed, path, 3, 4)
	require.NoError(t, err)
	require.Len(t, addresses, 4)

	for i, address := range addresses {
		single, err := DeriveAddress(testSeed, path, 3+uint32(i))
		require.NoError(t, err)
		assert.Equal(t, single, address)
	}
}

func TestAddressHexRoundTrip(t *testing.T) {
	address, err := DeriveAddress(testSeed, testPath(t), 0)
	require.NoError(t, err)

	parsed, err := AddressFromHex(address.Hex())
	require.NoError(t, err)
	assert.Equal(t, address, parsed)
}

func TestAddressFromHexRejectsMalformedInput(t *testing.T) {
	_, err := AddressFromHex("not-hex")
	assert.Equal(t, ErrInvalidAddress, err)

	_, err = AddressFromHex("abcdef")
	assert.Equal(t, ErrInvalidAddress, err)
}

func TestMnemonicSeedRoundTrip(t *testing.T) {
	mnemonic, err := NewMnemonic(NewMnemonicOpts{})
	require.NoError(t, err)
	require.Len(t, mnemonic, 12)

	seed, err := SeedFromMnemonic(mnemonic)
	require.NoError(t, err)
	assert.Len(t, seed, 64)

	again, err := SeedFromMnemonic(mnemonic)
	require.NoError(t, err)
	assert.Equal(t, seed, again)
}

func TestSeedFromInvalidMnemonic(t *testing.T) {
	_, err := SeedFromMnemonic([]string{"definitely", "not", "a", "mnemonic"})
	assert.Equal(t, ErrInvalidMnemonic, err)
}

func TestNewMnemonicRejectsInvalidEntropySize(t *testing.T) {
	for _, size := range []int{-1, 100, 300} {
		_, err := NewMnemonic(NewMnemonicOpts{EntropySize: size})
		assert.Equal(t, ErrInvalidEntropySize, err)
	}
}
