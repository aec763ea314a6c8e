package write

import (
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Outbound receives points. The non-blocking InfluxDB write API satisfies it.
type Outbound interface {
	WritePoint(point *write.Point)
}

var _ Outbound = (api.WriteAPI)(nil)
