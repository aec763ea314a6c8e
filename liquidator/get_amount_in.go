package liquidator

import (
	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/b"
)

// GetAmountIn returns the input required to receive amountOut:
//
//	amountIn = amountOut * reserveIn / (reserveOut - amountOut) + 1
//
// The added one makes sure that feeding the result back into GetAmountOut
// never yields less than amountOut.
func GetAmountIn(amountOut *uint256.Int, reserveIn *uint256.Int, reserveOut *uint256.Int) (*uint256.Int, error) {
	if reserveIn.IsZero() || reserveOut.IsZero() || !amountOut.Lt(reserveOut) {
		return nil, ErrInsufficientReserves
	}
	numerator, overflow := new(uint256.Int).MulOverflow(amountOut, reserveIn)
	if overflow {
		return nil, ErrOverflow
	}
	denominator := new(uint256.Int).Sub(reserveOut, amountOut)
	amountIn := numerator.Div(numerator, denominator)
	amountIn.Add(amountIn, b.D1)
	return amountIn, nil
}
