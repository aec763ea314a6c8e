package liquidator

import (
	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/b"
	"github.com/optakt/liquidator/fixed"
)

// VirtualSwap restores the price after a real trade of amountOut. It first
// executes a virtual trade of amountOut * swapMultiplier on the curve, which
// pushes the price of the out token back up, and then rescales the curve so
// the trade was liquidityFraction of the out reserve.
//
// The virtual trade is clamped to leave at least one unit in the out
// reserve and is skipped when the out reserve is already at one, or when it
// would grow the in reserve past 112 bits.
func VirtualSwap(r Reserves, amountOut *uint256.Int, swapMultiplier fixed.Fraction, liquidityFraction fixed.Fraction, minK *uint256.Int) (Reserves, error) {
	virtualOut, err := fixed.Mul(amountOut, swapMultiplier)
	if err != nil {
		return Reserves{}, err
	}

	amplified := r.Clone()
	if !virtualOut.IsZero() && r.Out.Gt(b.D1) {
		if !virtualOut.Lt(r.Out) {
			virtualOut = new(uint256.Int).Sub(r.Out, b.D1)
		}
		virtualIn, err := GetAmountIn(virtualOut, r.In, r.Out)
		if err != nil {
			return Reserves{}, err
		}
		in, overflow := new(uint256.Int).AddOverflow(r.In, virtualIn)
		if !overflow && !in.Gt(maxReserve) {
			amplified.In = in
			amplified.Out = new(uint256.Int).Sub(r.Out, virtualOut)
		}
	}

	return ApplyLiquidityFraction(amplified, amountOut, liquidityFraction, minK), nil
}

// ApplyLiquidityFraction rescales the reserves so that amountOut is exactly
// liquidityFraction of the new out reserve, keeping the price unchanged:
//
//	out' = amountOut / liquidityFraction
//	in'  = in * out' / out
//
// Small trades would otherwise leave the curve as deep as before, large ones
// would make it shallow. The rescale is skipped, and the reserves returned
// unchanged, when a new reserve would not fit 112 bits or when the new
// product would be at or below minK.
func ApplyLiquidityFraction(r Reserves, amountOut *uint256.Int, liquidityFraction fixed.Fraction, minK *uint256.Int) Reserves {
	out, err := fixed.Div(amountOut, liquidityFraction)
	if err != nil || out.Gt(maxReserve) || r.Out.IsZero() {
		return r.Clone()
	}
	in, overflow := new(uint256.Int).MulOverflow(r.In, out)
	if overflow {
		return r.Clone()
	}
	in.Div(in, r.Out)
	if in.Gt(maxReserve) {
		return r.Clone()
	}
	k := new(uint256.Int).Mul(in, out)
	if !k.Gt(minK) {
		return r.Clone()
	}
	return Reserves{In: in, Out: out}
}
