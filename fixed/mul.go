package fixed

import (
	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/b"
)

var scale = uint256.NewInt(Scale)

// Mul returns floor(a * f). The operand must fit 224 bits so that the
// intermediate product stays within 256 bits.
func Mul(a *uint256.Int, f Fraction) (*uint256.Int, error) {
	if a.Gt(b.MaxUint224) {
		return nil, ErrOperandTooLarge
	}
	out := new(uint256.Int).Mul(a, uint256.NewInt(f.Raw()))
	out.Div(out, scale)
	return out, nil
}
