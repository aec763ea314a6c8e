package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/optakt/liquidator/b"
	"github.com/optakt/liquidator/pair"
	"github.com/optakt/liquidator/schedule"
	"github.com/optakt/liquidator/vault"
	"github.com/optakt/liquidator/write"
)

type simulation struct {
	log         zerolog.Logger
	vault       *vault.Vault
	pair        *pair.Pair
	bids        *schedule.Schedule
	bidder      common.Address
	marketPrice decimal.Decimal
	margin      decimal.Decimal
	decimals    uint
	outbound    write.Outbound
	tags        write.Tags
}

type result struct {
	Swaps     uint
	Failed    uint
	AmountIn  *uint256.Int
	AmountOut *uint256.Int
	Remaining *uint256.Int
}

// run steps through time from start to end, accruing yield at every step
// and trading either the scripted bids or as the bidder.
func (s *simulation) run(start time.Time, end time.Time, step time.Duration) (*result, error) {

	if step <= 0 {
		return nil, fmt.Errorf("invalid step duration (%s)", step)
	}

	res := result{
		AmountIn:  new(uint256.Int),
		AmountOut: new(uint256.Int),
	}

	// bids at exactly start are due on the first step
	previous := start.Add(-time.Nanosecond)
	for now := start; !now.After(end); now = now.Add(step) {

		s.vault.Accrue(now)

		if s.bids != nil {
			for _, bid := range s.bids.Due(previous, now) {
				s.execute(now, bid, &res)
			}
		} else {
			err := s.bid(now, &res)
			if err != nil {
				return nil, fmt.Errorf("could not bid: %w", err)
			}
		}

		err := s.record(now)
		if err != nil {
			return nil, fmt.Errorf("could not record auction: %w", err)
		}

		previous = now
	}

	remaining, err := s.vault.LiquidatableBalanceOf(s.pair.TokenOut())
	if err != nil {
		return nil, fmt.Errorf("could not get remaining yield: %w", err)
	}
	res.Remaining = remaining

	return &res, nil
}

// bid buys all the yield on offer once its price is at least the margin
// below the market price.
func (s *simulation) bid(now time.Time, res *result) error {

	amountOut, err := s.pair.MaxAmountOut()
	if err != nil {
		return fmt.Errorf("could not get max amount out: %w", err)
	}
	if amountOut.IsZero() {
		return nil
	}

	amountIn, err := s.pair.ComputeExactAmountIn(amountOut)
	if err != nil {
		return fmt.Errorf("could not compute amount in: %w", err)
	}

	worth := b.MulDecimal(amountOut, s.marketPrice)
	limit := b.MulDecimal(worth, decimal.NewFromInt(1).Sub(s.margin))
	if amountIn.Gt(limit) {
		return nil
	}

	_, err = s.pair.SwapExactAmountOut(s.bidder, amountOut, amountIn)
	if err != nil {
		res.Failed++
		s.log.Warn().Err(err).Time("time", now).Str("amount_out", amountOut.Dec()).Msg("bidder swap failed")
		return nil
	}

	s.settled(now, string(schedule.ExactOut), amountIn, amountOut, res)
	return nil
}

func (s *simulation) execute(now time.Time, bid schedule.Bid, res *result) {

	var (
		amountIn  *uint256.Int
		amountOut *uint256.Int
		err       error
	)
	switch bid.Kind {
	case schedule.ExactIn:
		limit := new(uint256.Int)
		if bid.Limit != nil {
			limit = bid.Limit
		}
		amountIn = bid.Amount
		amountOut, err = s.pair.SwapExactAmountIn(s.bidder, bid.Amount, limit)
	case schedule.ExactOut:
		limit := new(uint256.Int).SetAllOne()
		if bid.Limit != nil {
			limit = bid.Limit
		}
		amountOut = bid.Amount
		amountIn, err = s.pair.SwapExactAmountOut(s.bidder, bid.Amount, limit)
	}
	if err != nil {
		res.Failed++
		s.log.Warn().
			Err(err).
			Time("time", bid.Time).
			Str("kind", string(bid.Kind)).
			Str("amount", bid.Amount.Dec()).
			Msg("bid failed")
		return
	}

	s.settled(now, string(bid.Kind), amountIn, amountOut, res)
}

func (s *simulation) settled(now time.Time, kind string, amountIn *uint256.Int, amountOut *uint256.Int, res *result) {

	res.Swaps++
	res.AmountIn.Add(res.AmountIn, amountIn)
	res.AmountOut.Add(res.AmountOut, amountOut)

	reserves := s.pair.Reserves()

	s.log.Info().
		Time("time", now).
		Str("kind", kind).
		Str("amount_in", humanize.Ftoa(b.ToFloat(amountIn, s.decimals))).
		Str("amount_out", humanize.Ftoa(b.ToFloat(amountOut, s.decimals))).
		Msg("swap executed")

	if s.outbound == nil {
		return
	}
	swap := write.Swap{
		Kind:      kind,
		AmountIn:  amountIn,
		AmountOut: amountOut,
		Reserves:  reserves,
	}
	write.SwapPoint(now, s.tags, s.decimals, swap, s.outbound)
}

func (s *simulation) record(now time.Time) error {

	if s.outbound == nil {
		return nil
	}

	available, err := s.pair.MaxAmountOut()
	if err != nil {
		return err
	}
	next, err := s.pair.NextState()
	if err != nil {
		return err
	}

	write.AuctionPoint(now, s.tags, s.decimals, available, next, s.outbound)
	return nil
}

func (r *result) log(log zerolog.Logger, decimals uint) {

	amountIn := b.ToFloat(r.AmountIn, decimals)
	amountOut := b.ToFloat(r.AmountOut, decimals)

	price := 0.0
	if amountOut > 0 {
		price = amountIn / amountOut
	}

	log.Info().
		Uint("swaps", r.Swaps).
		Uint("failed", r.Failed).
		Str("amount_in", humanize.Ftoa(amountIn)).
		Str("amount_out", humanize.Ftoa(amountOut)).
		Str("remaining", humanize.Ftoa(b.ToFloat(r.Remaining, decimals))).
		Float64("average_price", price).
		Msg("simulation complete")
}
