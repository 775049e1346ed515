package pow

import (
	"math"
	"math/bits"

	"golang.org/x/crypto/blake2b"
)

const nonceBytesLength = 8

// Score returns the proof-of-work score of the given serialized message,
// nonce included. The score grows exponentially with the number of
// trailing zero bits of the message digest and is normalized by the
// message size, so that bigger messages have to pay for the space they
// take up in the network.
func Score(data []byte) float64 {
	digest := blake2b.Sum256(data)

	zeros := 0
	for i := len(digest) - 1; i >= 0; i-- {
		trailing := bits.TrailingZeros8(digest[i])
		zeros += trailing
		if trailing < 8 {
			break
		}
	}

	return math.Pow(2, float64(zeros)) / float64(len(data))
}
