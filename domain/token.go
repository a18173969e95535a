package domain

import (
	"math/big"

	"github.com/x-xyz/pricebot/base/ctx"
)

type TokenInfo struct {
	Address  Address `json:"address"`
	Symbol   string  `json:"symbol"`
	Decimals int32   `json:"decimals"`
}

// OneUnit is the raw amount of a single whole token
func (t *TokenInfo) OneUnit() *big.Int {
	return Pow10(t.Decimals)
}

type TokenRepo interface {
	FindOne(ctx.Ctx, Address) (*TokenInfo, error)
}

// RouterRepo quotes swaps on a uniswap v2 style router
type RouterRepo interface {
	GetAmountsOut(c ctx.Ctx, amountIn *big.Int, path []Address) ([]*big.Int, error)
}
