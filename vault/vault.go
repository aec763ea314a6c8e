// Package vault simulates a yield source: a principal deposit that accrues
// interest over time, whose yield is handed out by liquidation pairs.
package vault

import (
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"

	"github.com/optakt/liquidator/b"
)

type Config struct {
	Asset     common.Address // token the interest is denominated in
	Payment   common.Address // token liquidators pay with
	Target    common.Address // receives the payments
	Principal *uint256.Int
	Rate      *uint256.Int // yearly, in ray
	Start     time.Time
}

// Vault implements pair.YieldSource.
type Vault struct {
	mu       sync.Mutex
	log      zerolog.Logger
	cfg      Config
	last     time.Time
	yield    *uint256.Int
	balances map[common.Address]map[common.Address]*uint256.Int
}

func New(log zerolog.Logger, cfg Config) *Vault {

	v := Vault{
		log:      log.With().Str("component", "vault").Logger(),
		cfg:      cfg,
		last:     cfg.Start,
		yield:    new(uint256.Int),
		balances: make(map[common.Address]map[common.Address]*uint256.Int),
	}

	return &v
}

// Accrue adds the interest earned by the principal between the last accrual
// and now to the liquidatable yield.
func (v *Vault) Accrue(now time.Time) *uint256.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !now.After(v.last) {
		return new(uint256.Int).Set(v.yield)
	}

	seconds := uint256.NewInt(uint64(now.Sub(v.last) / time.Second))
	factor := CalculateCompoundedInterest(v.cfg.Rate, seconds)
	factor.Sub(factor, b.E27)

	interest := new(uint256.Int).Mul(v.cfg.Principal, factor)
	interest.Div(interest, b.E27)

	v.yield.Add(v.yield, interest)
	v.last = now

	v.log.Debug().
		Time("time", now).
		Str("interest", interest.Dec()).
		Str("yield", v.yield.Dec()).
		Msg("yield accrued")

	return new(uint256.Int).Set(v.yield)
}

func (v *Vault) LiquidatableBalanceOf(token common.Address) (*uint256.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if token != v.cfg.Asset {
		return nil, fmt.Errorf("%w (token: %s)", ErrUnknownToken, token.Hex())
	}
	return new(uint256.Int).Set(v.yield), nil
}

func (v *Vault) Liquidate(account common.Address, tokenIn common.Address, amountIn *uint256.Int, tokenOut common.Address, amountOut *uint256.Int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if tokenOut != v.cfg.Asset {
		return fmt.Errorf("%w (token out: %s)", ErrUnknownToken, tokenOut.Hex())
	}
	if tokenIn != v.cfg.Payment {
		return fmt.Errorf("%w (token in: %s)", ErrUnknownToken, tokenIn.Hex())
	}
	if amountOut.Gt(v.yield) {
		return fmt.Errorf("%w (amount out: %s, yield: %s)", ErrInsufficientYield, amountOut.Dec(), v.yield.Dec())
	}

	v.yield.Sub(v.yield, amountOut)
	v.credit(tokenIn, v.cfg.Target, amountIn)
	v.credit(tokenOut, account, amountOut)

	v.log.Debug().
		Str("account", account.Hex()).
		Str("amount_in", amountIn.Dec()).
		Str("amount_out", amountOut.Dec()).
		Msg("yield liquidated")

	return nil
}

func (v *Vault) TargetOf(common.Address) common.Address {
	return v.cfg.Target
}

// BalanceOf returns the amount of token credited to account by liquidations.
func (v *Vault) BalanceOf(token common.Address, account common.Address) *uint256.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	balance, ok := v.balances[token][account]
	if !ok {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(balance)
}

func (v *Vault) credit(token common.Address, account common.Address, amount *uint256.Int) {
	accounts, ok := v.balances[token]
	if !ok {
		accounts = make(map[common.Address]*uint256.Int)
		v.balances[token] = accounts
	}
	balance, ok := accounts[account]
	if !ok {
		balance = new(uint256.Int)
		accounts[account] = balance
	}
	balance.Add(balance, amount)
}
