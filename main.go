package main

import (
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"github.com/optakt/liquidator/b"
	"github.com/optakt/liquidator/factory"
	"github.com/optakt/liquidator/fixed"
	"github.com/optakt/liquidator/pair"
	"github.com/optakt/liquidator/schedule"
	"github.com/optakt/liquidator/vault"
	"github.com/optakt/liquidator/write"
)

var (
	payment = common.HexToAddress("0x0000000000000000000000000000000000000001")
	asset   = common.HexToAddress("0x0000000000000000000000000000000000000002")
	target  = common.HexToAddress("0x0000000000000000000000000000000000000003")
	bidder  = common.HexToAddress("0x0000000000000000000000000000000000000004")
)

const dateLayout = "2006-01-02"

func main() {

	var (
		start    string
		end      string
		step     time.Duration
		decimals uint

		principal string
		rate      string

		reserveIn         string
		reserveOut        string
		minK              string
		swapMultiplier    string
		liquidityFraction string
		maxPriceImpact    string

		marketPrice string
		margin      string
		bidsFile    string

		logLevel     string
		influxURL    string
		influxOrg    string
		influxBucket string
	)

	pflag.StringVarP(&start, "start", "s", "2022-01-01", "start date for the simulation")
	pflag.StringVarP(&end, "end", "e", "2022-03-01", "end date for the simulation")
	pflag.DurationVar(&step, "step", time.Hour, "time between two simulation steps")
	pflag.UintVar(&decimals, "decimals", 18, "decimals of both tokens")

	pflag.StringVarP(&principal, "principal", "p", "1000000", "principal deposited in the yield source")
	pflag.StringVarP(&rate, "rate", "r", "0.05", "yearly interest rate of the yield source")

	pflag.StringVar(&reserveIn, "reserve-in", "1000", "initial virtual reserve of the token paid")
	pflag.StringVar(&reserveOut, "reserve-out", "1000", "initial virtual reserve of the token liquidated")
	pflag.StringVar(&minK, "min-k", "0.000001", "minimum product of the virtual reserves, in squared tokens")
	pflag.StringVar(&swapMultiplier, "swap-multiplier", "0.3", "fraction of each trade repeated as virtual swap")
	pflag.StringVar(&liquidityFraction, "liquidity-fraction", "0.02", "fraction of the out reserve a trade represents after rescaling")
	pflag.StringVar(&maxPriceImpact, "max-price-impact", "0", "maximum price impact of the virtual buyback, zero to disable")

	pflag.StringVar(&marketPrice, "market-price", "1", "market price of the liquidated token in the paid token")
	pflag.StringVar(&margin, "margin", "0.01", "discount to the market price the bidder waits for")
	pflag.StringVarP(&bidsFile, "bids", "b", "", "CSV file with scripted bids instead of the bidder")

	pflag.StringVarP(&logLevel, "log-level", "l", "info", "log level for output")
	pflag.StringVar(&influxURL, "influx-url", "", "InfluxDB server URL, empty to disable")
	pflag.StringVar(&influxOrg, "influx-org", "optakt", "InfluxDB organization")
	pflag.StringVar(&influxBucket, "influx-bucket", "liquidator", "InfluxDB bucket")

	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", logLevel).Msg("could not parse log level")
	}
	log = log.Level(level)

	loadEnv(log, ".env")

	startTime, err := time.Parse(dateLayout, start)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse start date")
	}
	endTime, err := time.Parse(dateLayout, end)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse end date")
	}

	amount := func(name string, value string, decimals int32) *uint256.Int {
		v, err := b.FromDecimal(value, decimals)
		if err != nil {
			log.Fatal().Err(err).Str("flag", name).Msg("could not parse amount")
		}
		return v
	}
	fraction := func(name string, value string) fixed.Fraction {
		f, err := fixed.Parse(value)
		if err != nil {
			log.Fatal().Err(err).Str("flag", name).Msg("could not parse fraction")
		}
		return f
	}
	factor := func(name string, value string) decimal.Decimal {
		d, err := decimal.NewFromString(value)
		if err != nil {
			log.Fatal().Err(err).Str("flag", name).Msg("could not parse decimal")
		}
		return d
	}

	v := vault.New(log, vault.Config{
		Asset:     asset,
		Payment:   payment,
		Target:    target,
		Principal: amount("principal", principal, int32(decimals)),
		Rate:      amount("rate", rate, 27),
		Start:     startTime,
	})

	pairs := factory.New(log)
	p, err := pairs.CreatePair(pair.Config{
		Source:            v,
		TokenIn:           payment,
		TokenOut:          asset,
		SwapMultiplier:    fraction("swap-multiplier", swapMultiplier),
		LiquidityFraction: fraction("liquidity-fraction", liquidityFraction),
		VirtualReserveIn:  amount("reserve-in", reserveIn, int32(decimals)),
		VirtualReserveOut: amount("reserve-out", reserveOut, int32(decimals)),
		MinK:              amount("min-k", minK, 2*int32(decimals)),
		MaxPriceImpact:    fraction("max-price-impact", maxPriceImpact),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not create liquidation pair")
	}

	var bids *schedule.Schedule
	if bidsFile != "" {
		bids, err = schedule.New(bidsFile, int32(decimals))
		if err != nil {
			log.Fatal().Err(err).Str("file", bidsFile).Msg("could not load bids")
		}
	}

	var outbound write.Outbound
	shutdown := func() {}
	if influxURL != "" {
		client := influxdb2.NewClient(influxURL, os.Getenv("INFLUX_TOKEN"))
		api := client.WriteAPI(influxOrg, influxBucket)
		shutdown = func() {
			api.Flush()
			client.Close()
		}
		go func() {
			for err := range api.Errors() {
				log.Warn().Err(err).Msg("could not write point")
			}
		}()
		outbound = api
	}

	sim := simulation{
		log:         log,
		vault:       v,
		pair:        p,
		bids:        bids,
		bidder:      bidder,
		marketPrice: factor("market-price", marketPrice),
		margin:      factor("margin", margin),
		decimals:    decimals,
		outbound:    outbound,
		tags: write.Tags{
			"swap_multiplier":    swapMultiplier,
			"liquidity_fraction": liquidityFraction,
			"max_price_impact":   maxPriceImpact,
		},
	}

	res, err := sim.run(startTime, endTime, step)
	shutdown()
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	res.log(log, decimals)
}
