package pair

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/liquidator"
)

// SwapExactAmountIn sells amountIn of the in token for at least
// amountOutMin of the out token, which the source releases to account.
func (p *Pair) SwapExactAmountIn(account common.Address, amountIn *uint256.Int, amountOutMin *uint256.Int) (*uint256.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	available, err := p.available()
	if err != nil {
		return nil, err
	}

	reserves, amountOut, err := liquidator.SwapExactAmountIn(p.reserves, available, amountIn, p.params)
	if err != nil {
		return nil, fmt.Errorf("could not swap exact amount in: %w", err)
	}
	if amountOut.Lt(amountOutMin) {
		return nil, fmt.Errorf("%w (amount out: %s, minimum: %s)", ErrSlippageNotMet, amountOut.Dec(), amountOutMin.Dec())
	}

	err = p.settle(account, amountIn, amountOut, reserves)
	if err != nil {
		return nil, err
	}

	return amountOut, nil
}

// SwapExactAmountOut buys exactly amountOut of the out token for at most
// amountInMax of the in token.
func (p *Pair) SwapExactAmountOut(account common.Address, amountOut *uint256.Int, amountInMax *uint256.Int) (*uint256.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	available, err := p.available()
	if err != nil {
		return nil, err
	}

	reserves, amountIn, err := liquidator.SwapExactAmountOut(p.reserves, available, amountOut, p.params)
	if err != nil {
		return nil, fmt.Errorf("could not swap exact amount out: %w", err)
	}
	if amountIn.Gt(amountInMax) {
		return nil, fmt.Errorf("%w (amount in: %s, maximum: %s)", ErrSlippageNotMet, amountIn.Dec(), amountInMax.Dec())
	}

	err = p.settle(account, amountIn, amountOut, reserves)
	if err != nil {
		return nil, err
	}

	return amountIn, nil
}

// settle has the source release the tokens and commits the reserves only
// once that succeeded. The caller holds the lock.
func (p *Pair) settle(account common.Address, amountIn *uint256.Int, amountOut *uint256.Int, reserves liquidator.Reserves) error {

	err := p.source.Liquidate(account, p.tokenIn, amountIn, p.tokenOut, amountOut)
	if err != nil {
		return fmt.Errorf("could not liquidate: %w", err)
	}

	p.reserves = reserves

	p.log.Debug().
		Str("account", account.Hex()).
		Str("amount_in", amountIn.Dec()).
		Str("amount_out", amountOut.Dec()).
		Str("reserve_in", reserves.In.Dec()).
		Str("reserve_out", reserves.Out.Dec()).
		Msg("swap settled")

	return nil
}
