package fixed

import (
	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/b"
)

// Div returns floor(a / f).
func Div(a *uint256.Int, f Fraction) (*uint256.Int, error) {
	if f == 0 {
		return nil, ErrDivisorZero
	}
	if a.Gt(b.MaxUint224) {
		return nil, ErrOperandTooLarge
	}
	out := new(uint256.Int).Mul(a, scale)
	out.Div(out, uint256.NewInt(f.Raw()))
	return out, nil
}
