package write

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/holiman/uint256"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/optakt/liquidator/b"
	"github.com/optakt/liquidator/liquidator"
)

// Swap describes a settled trade against a pair.
type Swap struct {
	Kind      string
	AmountIn  *uint256.Int
	AmountOut *uint256.Int
	Reserves  liquidator.Reserves
}

func SwapPoint(timestamp time.Time, tags Tags, decimals uint, swap Swap, outbound Outbound) {

	amountOut := b.ToFloat(swap.AmountOut, decimals)
	number, suffix := humanize.ComputeSI(amountOut)
	size := humanize.Ftoa(number) + suffix

	price := 0.0
	if amountOut > 0 {
		price = b.ToFloat(swap.AmountIn, decimals) / amountOut
	}

	fields := map[string]interface{}{
		"amount_in":   b.ToFloat(swap.AmountIn, decimals),
		"amount_out":  amountOut,
		"price":       price,
		"curve_price": marginalPrice(swap.Reserves),
		"reserve_in":  b.ToFloat(swap.Reserves.In, decimals),
		"reserve_out": b.ToFloat(swap.Reserves.Out, decimals),
	}

	point := write.NewPoint("swap", tags.With("kind", swap.Kind).With("size", size), fields, timestamp)
	outbound.WritePoint(point)
}
