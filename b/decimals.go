package b

import (
	"github.com/holiman/uint256"
)

var (
	D0    = uint256.NewInt(0)
	D1    = uint256.NewInt(1)
	D2    = uint256.NewInt(2)
	D6    = uint256.NewInt(6)
	D10   = uint256.NewInt(10)
	D24   = uint256.NewInt(24)
	D365  = uint256.NewInt(365)
	D3600 = uint256.NewInt(3600)
)
