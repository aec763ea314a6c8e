package pair

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// YieldSource holds the yield that a pair liquidates.
type YieldSource interface {
	// LiquidatableBalanceOf returns how much of token can currently be
	// liquidated.
	LiquidatableBalanceOf(token common.Address) (*uint256.Int, error)

	// Liquidate releases amountOut of tokenOut to account, against amountIn
	// of tokenIn delivered to the target of tokenIn. It must either settle
	// completely or return an error.
	Liquidate(account common.Address, tokenIn common.Address, amountIn *uint256.Int, tokenOut common.Address, amountOut *uint256.Int) error

	// TargetOf returns the account that receives tokenIn.
	TargetOf(tokenIn common.Address) common.Address
}
