package liquidator

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/liquidator/b"
	"github.com/optakt/liquidator/fixed"
)

func TestApplyLiquidityFraction(t *testing.T) {
	r := NewReserves(u(1000), u(500))

	next := ApplyLiquidityFraction(r, u(10), 100_000_000, u(1))
	assert.Equal(t, uint64(100), next.Out.Uint64())
	assert.Equal(t, uint64(200), next.In.Uint64())

	// product at minK is rejected
	next = ApplyLiquidityFraction(r, u(10), 100_000_000, u(20_000))
	assert.Equal(t, uint64(1000), next.In.Uint64())
	assert.Equal(t, uint64(500), next.Out.Uint64())

	// out reserve beyond 112 bits is rejected
	next = ApplyLiquidityFraction(r, b.MaxUint112, 500_000_000, u(1))
	assert.Equal(t, uint64(1000), next.In.Uint64())
	assert.Equal(t, uint64(500), next.Out.Uint64())

	// in reserve beyond 112 bits is rejected
	wide := NewReserves(b.MaxUint112, u(1))
	next = ApplyLiquidityFraction(wide, u(2), fixed.One, u(1))
	assert.True(t, next.In.Eq(b.MaxUint112))
	assert.Equal(t, uint64(1), next.Out.Uint64())

	// zero fraction is rejected
	next = ApplyLiquidityFraction(r, u(10), 0, u(1))
	assert.Equal(t, uint64(1000), next.In.Uint64())
}

func TestVirtualSwap(t *testing.T) {
	r := NewReserves(u(1000), u(1000))

	// no multiplier, full fraction: rescale only
	next, err := VirtualSwap(r, u(100), 0, fixed.One, u(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(100), next.In.Uint64())
	assert.Equal(t, uint64(100), next.Out.Uint64())

	// amplification of 50 out costs 50 * 1000 / 950 + 1 = 53 in, then the
	// rescale to 100 out keeps the price 1053 / 950
	next, err = VirtualSwap(r, u(100), 500_000_000, fixed.One, u(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(110), next.In.Uint64())
	assert.Equal(t, uint64(100), next.Out.Uint64())

	// rescale rejected: only the amplification stays
	next, err = VirtualSwap(r, u(100), 500_000_000, fixed.One, u(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, uint64(1053), next.In.Uint64())
	assert.Equal(t, uint64(950), next.Out.Uint64())
}

func TestVirtualSwapClampsAmplification(t *testing.T) {
	r := NewReserves(u(10), u(5))

	// 8 virtual out exceeds the reserve and is clamped to 4
	next, err := VirtualSwap(r, u(8), fixed.One, fixed.One, u(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, uint64(51), next.In.Uint64())
	assert.Equal(t, uint64(1), next.Out.Uint64())

	// out reserve at its floor skips amplification
	floor := NewReserves(u(10), u(1))
	next, err = VirtualSwap(floor, u(8), fixed.One, fixed.One, u(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), next.In.Uint64())
	assert.Equal(t, uint64(1), next.Out.Uint64())

	// in reserve would exceed 112 bits
	wide := NewReserves(b.MaxUint112, u(10))
	next, err = VirtualSwap(wide, u(5), fixed.One, fixed.One, b.MaxUint224)
	require.NoError(t, err)
	assert.True(t, next.In.Eq(b.MaxUint112))
	assert.Equal(t, uint64(10), next.Out.Uint64())
}

func TestVirtualSwapOperandTooLarge(t *testing.T) {
	r := NewReserves(u(10), u(10))
	huge := new(uint256.Int).Lsh(b.D1, 230)
	_, err := VirtualSwap(r, huge, 1, fixed.One, u(1))
	assert.ErrorIs(t, err, fixed.ErrOperandTooLarge)
}
