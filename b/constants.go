package b

import (
	"github.com/holiman/uint256"
)

// The values in this package are shared; never use them as a receiver.
var (
	HPY = new(uint256.Int).Mul(D365, D24)  // hours per year
	SPY = new(uint256.Int).Mul(HPY, D3600) // seconds per year

	MaxUint112 = new(uint256.Int).Sub(new(uint256.Int).Lsh(D1, 112), D1)
	MaxUint224 = new(uint256.Int).Sub(new(uint256.Int).Lsh(D1, 224), D1)
)
