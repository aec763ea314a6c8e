package write

import (
	"time"

	"github.com/holiman/uint256"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/optakt/liquidator/b"
	"github.com/optakt/liquidator/liquidator"
)

// AuctionPoint records the state of the auction between trades: the yield
// waiting to be liquidated and the price it would currently sell at.
func AuctionPoint(timestamp time.Time, tags Tags, decimals uint, available *uint256.Int, next liquidator.Reserves, outbound Outbound) {

	fields := map[string]interface{}{
		"available":   b.ToFloat(available, decimals),
		"price":       marginalPrice(next),
		"reserve_in":  b.ToFloat(next.In, decimals),
		"reserve_out": b.ToFloat(next.Out, decimals),
	}

	point := write.NewPoint("auction", tags, fields, timestamp)
	outbound.WritePoint(point)
}
