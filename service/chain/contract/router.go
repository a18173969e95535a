package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	baseabi "github.com/x-xyz/pricebot/base/abi"
	bCtx "github.com/x-xyz/pricebot/base/ctx"
	"github.com/x-xyz/pricebot/base/log"
	"github.com/x-xyz/pricebot/domain"
	"github.com/x-xyz/pricebot/service/chain"
	"golang.org/x/xerrors"
)

// Router quotes through a uniswap v2 style router, it implements domain.RouterRepo
type Router struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      domain.Address
}

func NewRouter(chainService chain.Client, address domain.Address) *Router {
	return &Router{
		chainService: chainService,
		abi:          baseabi.UniswapV2RouterABI,
		address:      address,
	}
}

func (r *Router) GetAmountsOut(ctx bCtx.Ctx, amountIn *big.Int, path []domain.Address) ([]*big.Int, error) {
	method := "getAmountsOut"
	unpacked, err := r.chainService.Call(ctx, r.address.ToCommon(), nil, r.abi, method, amountIn, domain.ToCommonAddresses(path))
	if err != nil {
		return nil, err
	}
	if len(unpacked) != 1 {
		return nil, xerrors.Errorf("getAmountsOut returned %d values: %w", len(unpacked), domain.ErrUpstreamQuery)
	}
	amounts, ok := unpacked[0].([]*big.Int)
	if !ok {
		return nil, xerrors.Errorf("getAmountsOut returned %T: %w", unpacked[0], domain.ErrUpstreamQuery)
	}
	// one amount per hop, the first one echoes amountIn
	if len(amounts) != len(path) {
		ctx.WithFields(log.Fields{
			"router":  r.address,
			"path":    path,
			"amounts": amounts,
		}).Error("unexpected amounts length")
		return nil, xerrors.Errorf("got %d amounts for %d hops: %w", len(amounts), len(path), domain.ErrUpstreamQuery)
	}
	return amounts, nil
}
