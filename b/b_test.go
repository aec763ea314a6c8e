package b

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	assert.Equal(t, 112, MaxUint112.BitLen())
	assert.Equal(t, 224, MaxUint224.BitLen())
	assert.Equal(t, "1000000000000000000000000000", E27.Dec())
	assert.Equal(t, uint64(31536000), SPY.Uint64())
}

func TestFromDecimal(t *testing.T) {
	v, err := FromDecimal("12.5", 18)
	require.NoError(t, err)
	assert.Equal(t, "12500000000000000000", v.Dec())

	v, err = FromDecimal("0.0000001", 6)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	_, err = FromDecimal("-1", 18)
	assert.Error(t, err)

	_, err = FromDecimal("abc", 18)
	assert.Error(t, err)
}

func TestMulDecimal(t *testing.T) {
	v := MulDecimal(uint256.NewInt(1000), decimal.RequireFromString("0.95"))
	assert.Equal(t, uint64(950), v.Uint64())

	v = MulDecimal(uint256.NewInt(3), decimal.RequireFromString("0.5"))
	assert.Equal(t, uint64(1), v.Uint64())
}

func TestToFloat(t *testing.T) {
	assert.InDelta(t, 1.5, ToFloat(uint256.NewInt(1_500_000), 6), 1e-12)
}
