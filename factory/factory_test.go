package factory

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/liquidator/pair"
	"github.com/optakt/liquidator/vault"
)

var (
	asset   = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	payment = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	target  = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

// ledgerSource is a value type holding a map, so it cannot be a map key.
type ledgerSource struct {
	balances map[common.Address]*uint256.Int
}

func (l ledgerSource) LiquidatableBalanceOf(token common.Address) (*uint256.Int, error) {
	balance, ok := l.balances[token]
	if !ok {
		return new(uint256.Int), nil
	}
	return balance, nil
}

func (l ledgerSource) Liquidate(common.Address, common.Address, *uint256.Int, common.Address, *uint256.Int) error {
	return nil
}

func (l ledgerSource) TargetOf(common.Address) common.Address {
	return target
}

func config(source pair.YieldSource) pair.Config {
	return pair.Config{
		Source:            source,
		TokenIn:           payment,
		TokenOut:          asset,
		SwapMultiplier:    300_000_000,
		LiquidityFraction: 20_000_000,
		VirtualReserveIn:  uint256.NewInt(1_000_000),
		VirtualReserveOut: uint256.NewInt(1_000_000),
		MinK:              uint256.NewInt(1_000),
	}
}

func TestFactory(t *testing.T) {
	f := New(zerolog.Nop())
	v := vault.New(zerolog.Nop(), vault.Config{
		Asset:     asset,
		Payment:   payment,
		Target:    target,
		Principal: uint256.NewInt(1_000_000),
		Rate:      uint256.NewInt(0),
		Start:     time.Unix(0, 0),
	})

	p, err := f.CreatePair(config(v))
	require.NoError(t, err)
	assert.Equal(t, 1, f.TotalPairs())

	_, err = f.CreatePair(config(v))
	assert.ErrorIs(t, err, ErrPairExists)

	reverse := config(v)
	reverse.TokenIn, reverse.TokenOut = asset, payment
	_, err = f.CreatePair(reverse)
	require.NoError(t, err)
	assert.Equal(t, 2, f.TotalPairs())

	invalid := config(v)
	invalid.TokenIn = common.HexToAddress("0x00000000000000000000000000000000000000ee")
	invalid.LiquidityFraction = 0
	_, err = f.CreatePair(invalid)
	assert.ErrorIs(t, err, pair.ErrLiquidityFraction)
	assert.Equal(t, 2, f.TotalPairs())

	found, err := f.Lookup(v, payment, asset)
	require.NoError(t, err)
	assert.Same(t, p, found)

	_, err = f.Lookup(v, target, asset)
	assert.ErrorIs(t, err, ErrPairNotFound)

	pairs := f.AllPairs()
	require.Len(t, pairs, 2)
	assert.Same(t, p, pairs[0])
}

func TestFactoryNonComparableSource(t *testing.T) {
	f := New(zerolog.Nop())
	source := ledgerSource{balances: map[common.Address]*uint256.Int{asset: uint256.NewInt(10)}}

	assert.NotPanics(t, func() {
		_, err := f.CreatePair(config(source))
		assert.ErrorIs(t, err, ErrSourceNotComparable)

		_, err = f.Lookup(source, payment, asset)
		assert.ErrorIs(t, err, ErrPairNotFound)
	})
	assert.Zero(t, f.TotalPairs())

	// the same source behind a pointer is fine
	_, err := f.CreatePair(config(&source))
	require.NoError(t, err)
	assert.Equal(t, 1, f.TotalPairs())
}
