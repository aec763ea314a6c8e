package liquidator

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/fixed"
)

// ComputeExactAmountIn returns how much of the in token must be paid to
// receive exactly amountOut, given the yield currently available.
func ComputeExactAmountIn(r Reserves, amountAvailable *uint256.Int, amountOut *uint256.Int, maxPriceImpact fixed.Fraction) (*uint256.Int, error) {
	available, err := RestrictAmountAvailable(r, amountAvailable, maxPriceImpact)
	if err != nil {
		return nil, err
	}
	if amountOut.Gt(available) {
		return nil, insufficientBalance(amountOut, available)
	}
	next, err := VirtualBuyback(r, available)
	if err != nil {
		return nil, err
	}
	return GetAmountIn(amountOut, next.In, next.Out)
}

// ComputeExactAmountOut returns how much of the out token is received for
// paying exactly amountIn.
func ComputeExactAmountOut(r Reserves, amountAvailable *uint256.Int, amountIn *uint256.Int, maxPriceImpact fixed.Fraction) (*uint256.Int, error) {
	available, err := RestrictAmountAvailable(r, amountAvailable, maxPriceImpact)
	if err != nil {
		return nil, err
	}
	next, err := VirtualBuyback(r, available)
	if err != nil {
		return nil, err
	}
	amountOut, err := GetAmountOut(amountIn, next.In, next.Out)
	if err != nil {
		return nil, err
	}
	if amountOut.Gt(available) {
		return nil, insufficientBalance(amountOut, available)
	}
	return amountOut, nil
}

func insufficientBalance(wanted *uint256.Int, available *uint256.Int) error {
	return fmt.Errorf("%w (wanted: %s, available: %s)", ErrInsufficientBalance, wanted.Dec(), available.Dec())
}
