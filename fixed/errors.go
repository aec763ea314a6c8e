package fixed

import (
	"errors"
)

var (
	ErrOperandTooLarge = errors.New("operand exceeds 224 bits")
	ErrDivisorZero     = errors.New("division by zero fraction")
)
