package write

import (
	"github.com/optakt/liquidator/b"
	"github.com/optakt/liquidator/liquidator"
)

// marginalPrice quotes one whole out token (1e18 units) against the curve,
// so the price keeps its precision whatever the token decimals are.
func marginalPrice(r liquidator.Reserves) float64 {
	amountIn, err := liquidator.Quote(b.E18, r.Out, r.In)
	if err != nil {
		return 0
	}
	return b.ToFloat(amountIn, 18)
}
