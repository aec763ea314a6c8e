package b

import (
	"github.com/holiman/uint256"
)

var (
	E4  = uint256.NewInt(1e4)
	E6  = uint256.NewInt(1e6)
	E9  = uint256.NewInt(1e9)
	E18 = uint256.NewInt(1e18)
	E27 = new(uint256.Int).Mul(E18, E9)
)
