// Package pair holds the state of a liquidation pair. It owns the virtual
// reserves, reads the available yield from its source, prices trades with
// the liquidator package and commits the new reserves once the source has
// settled a trade.
package pair

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"

	"github.com/optakt/liquidator/liquidator"
)

// Pair is safe for concurrent use. Every swap reads the available balance,
// prices the trade, settles it and commits the reserves under one lock.
type Pair struct {
	mu       sync.Mutex
	log      zerolog.Logger
	source   YieldSource
	tokenIn  common.Address
	tokenOut common.Address
	params   liquidator.Params
	reserves liquidator.Reserves
}

func New(log zerolog.Logger, cfg Config) (*Pair, error) {

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid pair configuration: %w", err)
	}

	p := Pair{
		log: log.With().
			Str("component", "pair").
			Str("token_in", cfg.TokenIn.Hex()).
			Str("token_out", cfg.TokenOut.Hex()).
			Logger(),
		source:   cfg.Source,
		tokenIn:  cfg.TokenIn,
		tokenOut: cfg.TokenOut,
		params: liquidator.Params{
			SwapMultiplier:    cfg.SwapMultiplier,
			LiquidityFraction: cfg.LiquidityFraction,
			MinK:              new(uint256.Int).Set(cfg.MinK),
			MaxPriceImpact:    cfg.MaxPriceImpact,
		},
		reserves: liquidator.NewReserves(cfg.VirtualReserveIn, cfg.VirtualReserveOut),
	}

	return &p, nil
}

func (p *Pair) TokenIn() common.Address {
	return p.tokenIn
}

func (p *Pair) TokenOut() common.Address {
	return p.tokenOut
}

// Target returns the account the in token has to be delivered to.
func (p *Pair) Target() common.Address {
	return p.source.TargetOf(p.tokenIn)
}

func (p *Pair) Params() liquidator.Params {
	params := p.params
	params.MinK = new(uint256.Int).Set(p.params.MinK)
	return params
}

// Reserves returns a copy of the committed virtual reserves.
func (p *Pair) Reserves() liquidator.Reserves {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reserves.Clone()
}

// NextState returns the reserves the next trade would be priced against.
func (p *Pair) NextState() (liquidator.Reserves, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	available, err := p.available()
	if err != nil {
		return liquidator.Reserves{}, err
	}
	return liquidator.NextState(p.reserves, available, p.params.MaxPriceImpact)
}

// MaxAmountOut returns the largest amount of the out token that can be
// bought right now.
func (p *Pair) MaxAmountOut() (*uint256.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	available, err := p.available()
	if err != nil {
		return nil, err
	}
	return liquidator.RestrictAmountAvailable(p.reserves, available, p.params.MaxPriceImpact)
}

// ComputeExactAmountIn quotes the amount of the in token needed to receive
// amountOut.
func (p *Pair) ComputeExactAmountIn(amountOut *uint256.Int) (*uint256.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	available, err := p.available()
	if err != nil {
		return nil, err
	}
	return liquidator.ComputeExactAmountIn(p.reserves, available, amountOut, p.params.MaxPriceImpact)
}

// ComputeExactAmountOut quotes the amount of the out token received for
// amountIn.
func (p *Pair) ComputeExactAmountOut(amountIn *uint256.Int) (*uint256.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	available, err := p.available()
	if err != nil {
		return nil, err
	}
	return liquidator.ComputeExactAmountOut(p.reserves, available, amountIn, p.params.MaxPriceImpact)
}

func (p *Pair) available() (*uint256.Int, error) {
	available, err := p.source.LiquidatableBalanceOf(p.tokenOut)
	if err != nil {
		return nil, fmt.Errorf("could not get liquidatable balance: %w", err)
	}
	return available, nil
}
