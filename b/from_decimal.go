package b

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// FromDecimal converts a human readable token amount, such as "12.5", into
// its integer representation with the given number of decimals. Digits below
// the token's precision are truncated.
func FromDecimal(s string, decimals int32) (*uint256.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("could not parse amount: %w", err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("amount is negative (%s)", s)
	}
	v, overflow := uint256.FromBig(d.Shift(decimals).BigInt())
	if overflow {
		return nil, fmt.Errorf("amount does not fit 256 bits (%s)", s)
	}
	return v, nil
}

// MulDecimal multiplies an integer amount by a decimal factor and truncates
// the result. Negative or overflowing results saturate to zero and the
// maximum value respectively.
func MulDecimal(v *uint256.Int, factor decimal.Decimal) *uint256.Int {
	product := decimal.NewFromBigInt(v.ToBig(), 0).Mul(factor)
	if product.IsNegative() {
		return new(uint256.Int)
	}
	out, overflow := uint256.FromBig(product.BigInt())
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return out
}
