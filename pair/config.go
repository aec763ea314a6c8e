package pair

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/b"
	"github.com/optakt/liquidator/fixed"
)

// MinPriceImpact is the smallest non-zero price impact cap a pair accepts.
const MinPriceImpact fixed.Fraction = fixed.Scale / 10_000

// Config holds the construction parameters of a pair. They are immutable
// once the pair exists.
type Config struct {
	Source   YieldSource
	TokenIn  common.Address
	TokenOut common.Address

	SwapMultiplier    fixed.Fraction
	LiquidityFraction fixed.Fraction

	VirtualReserveIn  *uint256.Int
	VirtualReserveOut *uint256.Int
	MinK              *uint256.Int

	// MaxPriceImpact of zero disables the price impact cap.
	MaxPriceImpact fixed.Fraction
}

// Validate checks the configuration against the bounds the pricing math
// relies on.
func (c Config) Validate() error {

	if c.Source == nil {
		return ErrInvalidSource
	}
	if c.TokenIn == c.TokenOut {
		return ErrSameToken
	}
	if c.SwapMultiplier > fixed.One {
		return ErrSwapMultiplier
	}
	if c.LiquidityFraction == 0 || c.LiquidityFraction > fixed.One {
		return ErrLiquidityFraction
	}

	for _, reserve := range []*uint256.Int{c.VirtualReserveIn, c.VirtualReserveOut} {
		if reserve == nil || reserve.IsZero() || reserve.Gt(b.MaxUint112) {
			return ErrReserveBounds
		}
	}

	if c.MinK == nil || c.MinK.IsZero() {
		return ErrMinK
	}
	k := new(uint256.Int).Mul(c.VirtualReserveIn, c.VirtualReserveOut)
	if k.Lt(c.MinK) {
		return ErrMinK
	}

	if c.MaxPriceImpact != 0 && (c.MaxPriceImpact <= MinPriceImpact || c.MaxPriceImpact >= fixed.One) {
		return ErrPriceImpact
	}

	return nil
}
