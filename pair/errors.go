package pair

import (
	"errors"
)

var (
	ErrInvalidSource     = errors.New("yield source is missing")
	ErrSameToken         = errors.New("token in and token out are the same")
	ErrSwapMultiplier    = errors.New("swap multiplier must not exceed one")
	ErrLiquidityFraction = errors.New("liquidity fraction must be above zero and not exceed one")
	ErrReserveBounds     = errors.New("virtual reserves must be above zero and fit 112 bits")
	ErrMinK              = errors.New("minimum k must be above zero and not exceed the initial reserve product")
	ErrPriceImpact       = errors.New("max price impact must be zero or strictly between the minimum and one")
	ErrSlippageNotMet    = errors.New("slippage limit not met")
)
