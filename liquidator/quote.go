package liquidator

import (
	"github.com/holiman/uint256"
)

// Quote returns the amount of the other token worth amountA at the marginal
// price of the given reserves.
func Quote(amountA *uint256.Int, reserveA *uint256.Int, reserveB *uint256.Int) (*uint256.Int, error) {
	if reserveA.IsZero() {
		return nil, ErrInsufficientReserves
	}
	amountB, overflow := new(uint256.Int).MulOverflow(amountA, reserveB)
	if overflow {
		return nil, ErrOverflow
	}
	amountB.Div(amountB, reserveA)
	return amountB, nil
}
