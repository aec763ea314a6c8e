package liquidator

import (
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/liquidator/b"
)

func u(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func dec(s string) *uint256.Int {
	return uint256.MustFromDecimal(s)
}

func e18(v uint64) *uint256.Int {
	return new(uint256.Int).Mul(u(v), b.E18)
}

func TestGetAmountOut(t *testing.T) {
	out, err := GetAmountOut(u(10), u(10), u(10))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), out.Uint64())

	out, err = GetAmountOut(u(0), u(10), u(10))
	require.NoError(t, err)
	assert.True(t, out.IsZero())

	_, err = GetAmountOut(u(10), u(0), u(10))
	assert.ErrorIs(t, err, ErrInsufficientReserves)

	_, err = GetAmountOut(u(10), u(10), u(0))
	assert.ErrorIs(t, err, ErrInsufficientReserves)

	max := new(uint256.Int).SetAllOne()
	_, err = GetAmountOut(max, u(1), u(2))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestGetAmountIn(t *testing.T) {
	in, err := GetAmountIn(u(5), u(10), u(10))
	require.NoError(t, err)
	assert.Equal(t, uint64(11), in.Uint64())

	_, err = GetAmountIn(u(10), u(10), u(10))
	assert.ErrorIs(t, err, ErrInsufficientReserves)

	_, err = GetAmountIn(u(11), u(10), u(10))
	assert.ErrorIs(t, err, ErrInsufficientReserves)

	_, err = GetAmountIn(u(1), u(0), u(10))
	assert.ErrorIs(t, err, ErrInsufficientReserves)
}

func TestGetAmountInCoversAmountOut(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		reserveIn := u(rng.Uint64()>>uint(1+rng.Intn(62)) + 1)
		reserveOut := u(rng.Uint64()>>uint(1+rng.Intn(62)) + 2)
		amountOut := u(rng.Uint64() % reserveOut.Uint64())

		amountIn, err := GetAmountIn(amountOut, reserveIn, reserveOut)
		require.NoError(t, err)
		got, err := GetAmountOut(amountIn, reserveIn, reserveOut)
		require.NoError(t, err)
		assert.False(t, got.Lt(amountOut), "in=%s out=%s reserves=%s/%s", amountIn.Dec(), amountOut.Dec(), reserveIn.Dec(), reserveOut.Dec())
	}
}

func TestQuote(t *testing.T) {
	out, err := Quote(u(10), u(20), u(30))
	require.NoError(t, err)
	assert.Equal(t, uint64(15), out.Uint64())

	_, err = Quote(u(10), u(0), u(30))
	assert.ErrorIs(t, err, ErrInsufficientReserves)
}

func TestVirtualBuyback(t *testing.T) {
	r := NewReserves(u(10), u(10))
	next, err := VirtualBuyback(r, u(10))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), next.In.Uint64())
	assert.Equal(t, uint64(20), next.Out.Uint64())

	// inputs are left untouched
	assert.Equal(t, uint64(10), r.In.Uint64())
	assert.Equal(t, uint64(10), r.Out.Uint64())

	next, err = VirtualBuyback(r, u(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), next.In.Uint64())
	assert.Equal(t, uint64(10), next.Out.Uint64())

	// never drains the in reserve
	next, err = VirtualBuyback(NewReserves(u(3), u(1)), b.MaxUint112)
	require.NoError(t, err)
	assert.False(t, next.In.IsZero())
}

func TestComputeExactAmountIn(t *testing.T) {
	r := NewReserves(u(10), u(10))
	in, err := ComputeExactAmountIn(r, u(10), u(10), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), in.Uint64())

	_, err = ComputeExactAmountIn(r, u(10), u(11), 0)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestComputeExactAmountInDecaysWithAvailable(t *testing.T) {
	r := NewReserves(u(1000), u(1000))

	scarce, err := ComputeExactAmountIn(r, u(100), u(20), 0)
	require.NoError(t, err)
	plenty, err := ComputeExactAmountIn(r, u(10000), u(20), 0)
	require.NoError(t, err)
	assert.True(t, scarce.Gt(plenty), "scarce=%s plenty=%s", scarce.Dec(), plenty.Dec())

	previous := new(uint256.Int).SetAllOne()
	for available := uint64(20); available <= 100_000; available *= 3 {
		in, err := ComputeExactAmountIn(r, u(available), u(20), 0)
		require.NoError(t, err)
		assert.False(t, in.Gt(previous), "available=%d", available)
		previous = in
	}
}

func TestComputeExactAmountOut(t *testing.T) {
	r := NewReserves(u(10), u(10))
	out, err := ComputeExactAmountOut(r, u(10), u(5), 0)
	require.NoError(t, err)
	// buyback leaves 5:20, so 5 in yields 5 * 20 / 10
	assert.Equal(t, uint64(10), out.Uint64())

	_, err = ComputeExactAmountOut(r, u(10), u(7), 0)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestComputeRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		in        *uint256.Int
		out       *uint256.Int
		available *uint256.Int
		wanted    *uint256.Int
	}{
		{name: "balanced", in: e18(100), out: e18(100), available: e18(10), wanted: e18(1)},
		{name: "small", in: u(1000), out: u(1000), available: u(10000), wanted: u(20)},
		{name: "skewed", in: u(1_000_000), out: u(5_000_000), available: u(100_000), wanted: u(1000)},
		{name: "cheap", in: e18(10), out: u(1_000_000), available: e18(1), wanted: u(100_000)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := NewReserves(test.in, test.out)
			amountIn, err := ComputeExactAmountIn(r, test.available, test.wanted, 0)
			require.NoError(t, err)
			amountOut, err := ComputeExactAmountOut(r, test.available, amountIn, 0)
			require.NoError(t, err)
			assert.False(t, amountOut.Lt(test.wanted), "got %s, wanted %s", amountOut.Dec(), test.wanted.Dec())
		})
	}
}
