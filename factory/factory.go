// Package factory creates liquidation pairs and keeps track of them.
package factory

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/optakt/liquidator/pair"
)

var (
	ErrPairExists   = errors.New("pair already exists")
	ErrPairNotFound = errors.New("pair not found")

	ErrSourceNotComparable = errors.New("yield source is not comparable, use a pointer")
)

// key identifies a pair. The source is compared by identity, so it has to
// be of a comparable type, typically a pointer.
type key struct {
	source   pair.YieldSource
	tokenIn  common.Address
	tokenOut common.Address
}

type Factory struct {
	mu     sync.RWMutex
	log    zerolog.Logger
	pairs  []*pair.Pair
	lookup map[key]*pair.Pair
}

func New(log zerolog.Logger) *Factory {

	f := Factory{
		log:    log.With().Str("component", "factory").Logger(),
		lookup: make(map[key]*pair.Pair),
	}

	return &f
}

// CreatePair validates the configuration and registers a new pair. There is
// at most one pair per source and token direction.
func (f *Factory) CreatePair(cfg pair.Config) (*pair.Pair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !isComparable(cfg.Source) {
		return nil, ErrSourceNotComparable
	}

	k := key{source: cfg.Source, tokenIn: cfg.TokenIn, tokenOut: cfg.TokenOut}
	_, ok := f.lookup[k]
	if ok {
		return nil, fmt.Errorf("%w (token in: %s, token out: %s)", ErrPairExists, cfg.TokenIn.Hex(), cfg.TokenOut.Hex())
	}

	p, err := pair.New(f.log, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pair: %w", err)
	}

	f.pairs = append(f.pairs, p)
	f.lookup[k] = p

	f.log.Info().
		Str("token_in", cfg.TokenIn.Hex()).
		Str("token_out", cfg.TokenOut.Hex()).
		Str("swap_multiplier", cfg.SwapMultiplier.String()).
		Str("liquidity_fraction", cfg.LiquidityFraction.String()).
		Str("max_price_impact", cfg.MaxPriceImpact.String()).
		Int("total", len(f.pairs)).
		Msg("pair created")

	return p, nil
}

// Lookup returns the pair registered for the given source and tokens.
func (f *Factory) Lookup(source pair.YieldSource, tokenIn common.Address, tokenOut common.Address) (*pair.Pair, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if !isComparable(source) {
		return nil, ErrPairNotFound
	}

	p, ok := f.lookup[key{source: source, tokenIn: tokenIn, tokenOut: tokenOut}]
	if !ok {
		return nil, ErrPairNotFound
	}
	return p, nil
}

// AllPairs returns the pairs in creation order.
func (f *Factory) AllPairs() []*pair.Pair {
	f.mu.RLock()
	defer f.mu.RUnlock()

	pairs := make([]*pair.Pair, len(f.pairs))
	copy(pairs, f.pairs)
	return pairs
}

func (f *Factory) TotalPairs() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.pairs)
}

func isComparable(source pair.YieldSource) bool {
	return source == nil || reflect.TypeOf(source).Comparable()
}
