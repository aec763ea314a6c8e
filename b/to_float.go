package b

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

func ToFloat(v *uint256.Int, decimals uint) float64 {
	n, _ := new(big.Float).SetInt(v.ToBig()).Float64()
	d := math.Pow(10, float64(decimals))
	f := n / d
	return f
}
