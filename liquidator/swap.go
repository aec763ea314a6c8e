package liquidator

import (
	"github.com/holiman/uint256"
)

// SwapExactAmountIn prices a trade of amountIn and returns the reserves
// after the trade together with the amount of the out token to hand out.
//
// The steps are: virtual buyback of the available yield, the real trade on
// the resulting curve, then the virtual swap and rescale.
func SwapExactAmountIn(r Reserves, amountAvailable *uint256.Int, amountIn *uint256.Int, params Params) (Reserves, *uint256.Int, error) {
	available, err := RestrictAmountAvailable(r, amountAvailable, params.MaxPriceImpact)
	if err != nil {
		return Reserves{}, nil, err
	}
	next, err := VirtualBuyback(r, available)
	if err != nil {
		return Reserves{}, nil, err
	}
	amountOut, err := GetAmountOut(amountIn, next.In, next.Out)
	if err != nil {
		return Reserves{}, nil, err
	}
	if amountOut.Gt(available) {
		return Reserves{}, nil, insufficientBalance(amountOut, available)
	}

	next, err = settle(next, amountIn, amountOut, params)
	if err != nil {
		return Reserves{}, nil, err
	}
	return next, amountOut, nil
}

// SwapExactAmountOut prices a trade that receives exactly amountOut and
// returns the reserves after the trade together with the amount of the in
// token to be paid.
func SwapExactAmountOut(r Reserves, amountAvailable *uint256.Int, amountOut *uint256.Int, params Params) (Reserves, *uint256.Int, error) {
	available, err := RestrictAmountAvailable(r, amountAvailable, params.MaxPriceImpact)
	if err != nil {
		return Reserves{}, nil, err
	}
	if amountOut.Gt(available) {
		return Reserves{}, nil, insufficientBalance(amountOut, available)
	}
	next, err := VirtualBuyback(r, available)
	if err != nil {
		return Reserves{}, nil, err
	}
	amountIn, err := GetAmountIn(amountOut, next.In, next.Out)
	if err != nil {
		return Reserves{}, nil, err
	}

	next, err = settle(next, amountIn, amountOut, params)
	if err != nil {
		return Reserves{}, nil, err
	}
	return next, amountIn, nil
}

// settle applies the real trade to the curve and runs the virtual swap.
func settle(r Reserves, amountIn *uint256.Int, amountOut *uint256.Int, params Params) (Reserves, error) {
	in, overflow := new(uint256.Int).AddOverflow(r.In, amountIn)
	if overflow {
		return Reserves{}, ErrOverflow
	}
	traded := Reserves{
		In:  in,
		Out: new(uint256.Int).Sub(r.Out, amountOut),
	}
	next, err := VirtualSwap(traded, amountOut, params.SwapMultiplier, params.LiquidityFraction, params.MinK)
	if err != nil {
		return Reserves{}, err
	}
	if !next.Bounded() {
		return Reserves{}, ErrReserveOverflow
	}
	return next, nil
}
