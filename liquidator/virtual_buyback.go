package liquidator

import (
	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/fixed"
)

// VirtualBuyback sells the available yield into the curve before a real
// trade is priced. The longer yield accrues, the more of it is sold back and
// the cheaper the out token becomes, which is what makes the auction decay.
//
//	bought = GetAmountOut(amountAvailable, reserveOut, reserveIn)
//	reserveIn' = reserveIn - bought
//	reserveOut' = reserveOut + amountAvailable
//
// bought is strictly smaller than reserveIn, so reserveIn' stays positive.
func VirtualBuyback(r Reserves, amountAvailable *uint256.Int) (Reserves, error) {
	bought, err := GetAmountOut(amountAvailable, r.Out, r.In)
	if err != nil {
		return Reserves{}, err
	}
	out, overflow := new(uint256.Int).AddOverflow(r.Out, amountAvailable)
	if overflow {
		return Reserves{}, ErrOverflow
	}
	next := Reserves{
		In:  new(uint256.Int).Sub(r.In, bought),
		Out: out,
	}
	return next, nil
}

// NextState returns the reserves the next trade will be priced against: the
// current reserves after the virtual buyback of the available balance,
// restricted by the price impact cap if one is set.
func NextState(r Reserves, amountAvailable *uint256.Int, maxPriceImpact fixed.Fraction) (Reserves, error) {
	available, err := RestrictAmountAvailable(r, amountAvailable, maxPriceImpact)
	if err != nil {
		return Reserves{}, err
	}
	return VirtualBuyback(r, available)
}
