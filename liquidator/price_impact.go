package liquidator

import (
	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/b"
	"github.com/optakt/liquidator/fixed"
)

var scale = uint256.NewInt(fixed.Scale)

// PriceImpact returns the relative drop of the price of the out token,
// measured in the in token (reserveIn / reserveOut), caused by the virtual
// buyback of amount. The result is rounded down to the fraction precision.
func PriceImpact(r Reserves, amount *uint256.Int) (fixed.Fraction, error) {
	next, err := VirtualBuyback(r, amount)
	if err != nil {
		return 0, err
	}

	// ratio = (in' / out') / (in / out) = in' * out / (in * out')
	numerator, overflow := new(uint256.Int).MulOverflow(next.In, r.Out)
	if overflow {
		return 0, ErrOverflow
	}
	numerator, overflow = numerator.MulOverflow(numerator, scale)
	if overflow {
		return 0, ErrOverflow
	}
	denominator, overflow := new(uint256.Int).MulOverflow(r.In, next.Out)
	if overflow {
		return 0, ErrOverflow
	}

	// The ratio is rounded up so that the impact is rounded down.
	ratio, remainder := new(uint256.Int).DivMod(numerator, denominator, new(uint256.Int))
	if !remainder.IsZero() {
		ratio.Add(ratio, b.D1)
	}
	if ratio.Gt(scale) {
		return 0, nil
	}
	impact := new(uint256.Int).Sub(scale, ratio)
	return fixed.Fraction(impact.Uint64()), nil
}

// MaxBuybackAmount returns the largest amount of the out token that can be
// virtually bought back while moving the price by at most maxPriceImpact.
//
// On a curve with invariant k = in * out, selling a of the out token moves
// the price from in/out = in^2/k to in'^2/k = k/(out+a)^2. Capping the price
// ratio at (1 - m) can be solved for either reserve:
//
//	out + a <= out / sqrt(1 - m)
//	in'     >= in * sqrt(1 - m)
//
// Both are exact in theory. Integer square roots lose precision on the
// smaller reserve, so the formulation on the larger reserve is used. Ties
// use the out reserve. All roundings make the amount smaller, so
// PriceImpact of the result never exceeds maxPriceImpact.
func MaxBuybackAmount(r Reserves, maxPriceImpact fixed.Fraction) (*uint256.Int, error) {
	if maxPriceImpact == 0 || maxPriceImpact >= fixed.One {
		return nil, ErrInvalidPriceImpact
	}
	if r.In.IsZero() || r.Out.IsZero() {
		return nil, ErrInsufficientReserves
	}
	remaining := uint256.NewInt(fixed.Scale - maxPriceImpact.Raw())
	if r.In.Gt(r.Out) {
		return maxBuybackByReserveIn(r, remaining)
	}
	return maxBuybackByReserveOut(r, remaining)
}

// maxBuybackByReserveOut solves (out + a)^2 <= out^2 / (1 - m):
//
//	a = floor(sqrt(floor(out^2 * SCALE / (SCALE - m)))) - out
func maxBuybackByReserveOut(r Reserves, remaining *uint256.Int) (*uint256.Int, error) {
	square, overflow := new(uint256.Int).MulOverflow(r.Out, r.Out)
	if overflow {
		return nil, ErrOverflow
	}
	square, overflow = square.MulOverflow(square, scale)
	if overflow {
		return nil, ErrOverflow
	}
	square.Div(square, remaining)
	total := new(uint256.Int).Sqrt(square)
	amount := total.Sub(total, r.Out)
	return amount, nil
}

// maxBuybackByReserveIn solves in'^2 >= in^2 * (1 - m) for the smallest
// in', which gives the largest amount the buyback may take out of the in
// reserve. The out amount that buys exactly that much is then
//
//	a = bought * out / (in - bought)
//
// which is the inverse of GetAmountOut without the rounding correction, so
// the buyback never takes more than bought.
func maxBuybackByReserveIn(r Reserves, remaining *uint256.Int) (*uint256.Int, error) {
	square, overflow := new(uint256.Int).MulOverflow(r.In, r.In)
	if overflow {
		return nil, ErrOverflow
	}
	square, overflow = square.MulOverflow(square, remaining)
	if overflow {
		return nil, ErrOverflow
	}
	square = ceilDiv(square, scale)
	minIn := ceilSqrt(square)
	bought := new(uint256.Int).Sub(r.In, minIn)
	amount, overflow := bought.MulOverflow(bought, r.Out)
	if overflow {
		return nil, ErrOverflow
	}
	amount.Div(amount, minIn)
	return amount, nil
}

// RestrictAmountAvailable caps the available balance at the amount whose
// buyback stays within maxPriceImpact. A zero maxPriceImpact leaves the
// balance untouched. The part above the cap is not lost: it stays with the
// yield source and is picked up by later trades.
func RestrictAmountAvailable(r Reserves, amountAvailable *uint256.Int, maxPriceImpact fixed.Fraction) (*uint256.Int, error) {
	if maxPriceImpact == 0 {
		return new(uint256.Int).Set(amountAvailable), nil
	}
	limit, err := MaxBuybackAmount(r, maxPriceImpact)
	if err != nil {
		return nil, err
	}
	if amountAvailable.Lt(limit) {
		return new(uint256.Int).Set(amountAvailable), nil
	}
	return limit, nil
}

func ceilDiv(x *uint256.Int, y *uint256.Int) *uint256.Int {
	quotient, remainder := new(uint256.Int).DivMod(x, y, new(uint256.Int))
	if !remainder.IsZero() {
		quotient.Add(quotient, b.D1)
	}
	return quotient
}

func ceilSqrt(x *uint256.Int) *uint256.Int {
	root := new(uint256.Int).Sqrt(x)
	if !new(uint256.Int).Mul(root, root).Eq(x) {
		root.Add(root, b.D1)
	}
	return root
}
