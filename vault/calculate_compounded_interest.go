package vault

import (
	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/b"
)

// CalculateCompoundedInterest adopted from AAVE v2:
// => https://github.com/aave/protocol-v2/blob/master/contracts/protocol/libraries/math/MathUtils.sol#L32-L70
//
// rate is the yearly rate in ray (1e27) and exp the elapsed time in seconds.
// The result is the growth factor in ray.
func CalculateCompoundedInterest(rate *uint256.Int, exp *uint256.Int) *uint256.Int {

	if exp.IsZero() {
		return new(uint256.Int).Set(b.E27)
	}

	em1 := new(uint256.Int).Sub(exp, b.D1)
	em2 := new(uint256.Int)
	if exp.Gt(b.D2) {
		em2.Sub(exp, b.D2)
	}

	half := new(uint256.Int).Div(b.E27, b.D2)

	rps := new(uint256.Int).Div(rate, b.SPY)

	bp2 := new(uint256.Int).Mul(rps, rps)
	bp2.Add(bp2, half)
	bp2.Div(bp2, b.E27)

	bp3 := new(uint256.Int).Mul(bp2, rps)
	bp3.Add(bp3, half)
	bp3.Div(bp3, b.E27)

	t1 := new(uint256.Int).Mul(exp, rps)

	t2 := new(uint256.Int).Mul(exp, em1)
	t2.Mul(t2, bp2)
	t2.Div(t2, b.D2)

	t3 := new(uint256.Int).Mul(exp, em1)
	t3.Mul(t3, em2)
	t3.Mul(t3, bp3)
	t3.Div(t3, b.D6)

	out := new(uint256.Int).Add(b.E27, t1)
	out.Add(out, t2)
	out.Add(out, t3)

	return out
}
