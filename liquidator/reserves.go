// Package liquidator contains the pricing math of a liquidation pair: a
// constant-product curve over virtual reserves that is pushed down by the
// yield waiting to be liquidated and pushed back up after every swap.
//
// All functions are pure. They never modify their arguments and always
// return newly allocated values, so the caller owns the only mutable copy of
// the reserves and decides when to commit a result.
package liquidator

import (
	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/fixed"
)

// Reserves are the virtual balances of the curve. In is denominated in the
// token the pair receives, Out in the token it hands out.
type Reserves struct {
	In  *uint256.Int
	Out *uint256.Int
}

// NewReserves copies the given values into a new reserve pair.
func NewReserves(in *uint256.Int, out *uint256.Int) Reserves {
	return Reserves{
		In:  new(uint256.Int).Set(in),
		Out: new(uint256.Int).Set(out),
	}
}

func (r Reserves) Clone() Reserves {
	return NewReserves(r.In, r.Out)
}

// K returns the product of both reserves, and whether it overflowed.
func (r Reserves) K() (*uint256.Int, bool) {
	return new(uint256.Int).MulOverflow(r.In, r.Out)
}

// Bounded reports whether both reserves fit into 112 bits.
func (r Reserves) Bounded() bool {
	return !r.In.Gt(maxReserve) && !r.Out.Gt(maxReserve)
}

// Params are the immutable swap parameters of a pair.
type Params struct {
	SwapMultiplier    fixed.Fraction
	LiquidityFraction fixed.Fraction
	MinK              *uint256.Int

	// MaxPriceImpact caps how far the virtual buyback may move the price.
	// Zero disables the cap.
	MaxPriceImpact fixed.Fraction
}
