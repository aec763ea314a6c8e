package liquidator

import (
	"errors"

	"github.com/optakt/liquidator/b"
)

var (
	ErrInsufficientReserves = errors.New("insufficient reserves")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrOverflow             = errors.New("numeric overflow")
	ErrReserveOverflow      = errors.New("reserve exceeds 112 bits")
	ErrInvalidPriceImpact   = errors.New("price impact must be strictly between zero and one")
)

var maxReserve = b.MaxUint112
