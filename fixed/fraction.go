// Package fixed implements unsigned fixed-point fractions with nine decimal
// digits of precision, and the multiplication and division of 256-bit
// integers by such fractions.
package fixed

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	Decimals = 9
	Scale    = 1_000_000_000
	MaxRaw   = math.MaxUint32
)

// Fraction is the raw numerator of a value over Scale (UFixed32x9).
type Fraction uint32

// One is the fraction 1.0.
const One Fraction = Scale

// Parse reads a decimal string such as "0.3" into a fraction.
func Parse(s string) (Fraction, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("could not parse fraction: %w", err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("fraction is negative (%s)", s)
	}
	raw := d.Shift(Decimals)
	if !raw.Equal(raw.Truncate(0)) {
		return 0, fmt.Errorf("fraction has more than %d decimals (%s)", Decimals, s)
	}
	if raw.GreaterThan(decimal.NewFromInt(MaxRaw)) {
		return 0, fmt.Errorf("fraction exceeds maximum (%s)", s)
	}
	return Fraction(raw.IntPart()), nil
}

func (f Fraction) Raw() uint64 {
	return uint64(f)
}

func (f Fraction) Float64() float64 {
	return float64(f) / Scale
}

func (f Fraction) String() string {
	return decimal.New(int64(f), -Decimals).String()
}
