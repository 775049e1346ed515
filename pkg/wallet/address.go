package wallet

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"golang.org/x/crypto/blake2b"
)

// AddressLength is the byte length of an address, the digest size of the
// hash applied to the derived public key.
const AddressLength = 32

// AddressType tags the scheme an address belongs to.
type AddressType byte

// Ed25519AddressType is the only address type currently issued by the
// network.
const Ed25519AddressType AddressType = 1

// Address is the deterministic output of deriving (seed, path, index).
// Immutable once derived.
type Address struct {
	addrType AddressType
	digest   [AddressLength]byte
}

// NewAddress returns an address of the given type wrapping the given
// digest.
func NewAddress(addrType AddressType, digest [AddressLength]byte) (Address, error) {
	if addrType != Ed25519AddressType {
		return Address{}, ErrInvalidAddressType
	}
	return Address{addrType, digest}, nil
}

// AddressFromHex parses an Ed25519 address from its hex representation.
func AddressFromHex(s string) (Address, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, ErrInvalidAddress
	}
	if len(buf) != AddressLength {
		return Address{}, ErrInvalidAddress
	}
	var digest [AddressLength]byte
	copy(digest[:], buf)
	return Address{Ed25519AddressType, digest}, nil
}

// Type returns the address type tag.
func (a Address) Type() AddressType {
	return a.addrType
}

// Bytes returns a copy of the address digest.
func (a Address) Bytes() []byte {
	buf := make([]byte, AddressLength)
	copy(buf, a.digest[:])
	return buf
}

// Hex returns the hex representation of the address digest.
func (a Address) Hex() string {
	return hex.EncodeToString(a.digest[:])
}

func (a Address) String() string {
	return a.Hex()
}

// DeriveAddress derives the address at the given index of the wallet chain
// identified by (seed, path). The derivation is pure, the same inputs
// always yield the same address.
func DeriveAddress(seed []byte, path DerivationPath, index uint32) (Address, error) {
	if len(seed) <= 0 {
		return Address{}, ErrNullSeed
	}
	if len(path) <= 0 {
		return Address{}, ErrNullDerivationPath
	}

	hdNode, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return Address{}, err
	}
	for _, step := range path.Extend(index) {
		hdNode, err = hdNode.Derive(step)
		if err != nil {
			return Address{}, err
		}
	}

	pubkey, err := hdNode.ECPubKey()
	if err != nil {
		return Address{}, err
	}

	digest := blake2b.Sum256(pubkey.SerializeCompressed())
	return Address{Ed25519AddressType, digest}, nil
}

// DeriveAddresses derives count consecutive addresses starting at the
// given index.
func DeriveAddresses(
	seed []byte, path DerivationPath, start, count uint32,
) ([]Address, error) {
	addresses := make([]Address, 0, count)
	for i := uint32(0); i < count; i++ {
		address, err := DeriveAddress(seed, path, start+i)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}
