package vault

import (
	"errors"
)

var (
	ErrInsufficientYield = errors.New("insufficient yield")
	ErrUnknownToken      = errors.New("unknown token")
)
