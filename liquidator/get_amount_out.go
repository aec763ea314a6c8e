package liquidator

import (
	"github.com/holiman/uint256"
)

// GetAmountOut returns the output of a constant-product trade without fee:
//
//	amountOut = amountIn * reserveOut / (reserveIn + amountIn)
//
// The result is floored, which favours the curve.
func GetAmountOut(amountIn *uint256.Int, reserveIn *uint256.Int, reserveOut *uint256.Int) (*uint256.Int, error) {
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return nil, ErrInsufficientReserves
	}
	numerator, overflow := new(uint256.Int).MulOverflow(amountIn, reserveOut)
	if overflow {
		return nil, ErrOverflow
	}
	denominator, overflow := new(uint256.Int).AddOverflow(reserveIn, amountIn)
	if overflow {
		return nil, ErrOverflow
	}
	amountOut := numerator.Div(numerator, denominator)
	return amountOut, nil
}
