package mathutil

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	//TokensPerMi represents a single Mi expressed in base tokens
	TokensPerMi = uint64(math.Pow10(6))
	//TokensPerMiDecimal represents a single Mi expressed in base tokens as decimal.Decimal
	TokensPerMiDecimal = decimal.NewFromInt(int64(TokensPerMi))
)

func init() {
	decimal.DivisionPrecision = 6
}

//ToMi converts an amount of base tokens into Mi as decimal.Decimal
func ToMi(tokens uint64) (z decimal.Decimal) {
	z = decimal.NewFromBigInt(new(big.Int).SetUint64(tokens), 0).
		DivRound(TokensPerMiDecimal, 6)
	return
}

//FromMi converts an amount of Mi into base tokens, truncating below one token
func FromMi(mi decimal.Decimal) (z uint64) {
	z = mi.Mul(TokensPerMiDecimal).BigInt().Uint64()
	return
}

//Sum adds a list of uint64 amounts without overflowing and returns the result as decimal.Decimal
func Sum(amounts []uint64) (z decimal.Decimal) {
	for _, amount := range amounts {
		z = z.Add(decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0))
	}
	return
}
