package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	baseabi "github.com/x-xyz/pricebot/base/abi"
	bCtx "github.com/x-xyz/pricebot/base/ctx"
	"github.com/x-xyz/pricebot/domain"
	"github.com/x-xyz/pricebot/service/chain"
	"golang.org/x/xerrors"
)

type Erc20Contract interface {
	Symbol(ctx bCtx.Ctx, addr domain.Address) (string, error)
	Decimals(ctx bCtx.Ctx, addr domain.Address) (int32, error)
}

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) *Erc20 {
	return &Erc20{
		chainService: chainService,
		abi:          baseabi.ERC20ABI,
	}
}

func (e *Erc20) Symbol(ctx bCtx.Ctx, addr domain.Address) (string, error) {
	method := "symbol"
	unpacked, err := e.chainService.Call(ctx, addr.ToCommon(), nil, e.abi, method)
	if err != nil {
		return "", err
	}
	if len(unpacked) != 1 {
		return "", xerrors.Errorf("symbol returned %d values: %w", len(unpacked), domain.ErrUpstreamQuery)
	}
	symbol, ok := unpacked[0].(string)
	if !ok {
		return "", xerrors.Errorf("symbol returned %T: %w", unpacked[0], domain.ErrUpstreamQuery)
	}
	return symbol, nil
}

func (e *Erc20) Decimals(ctx bCtx.Ctx, addr domain.Address) (int32, error) {
	method := "decimals"
	unpacked, err := e.chainService.Call(ctx, addr.ToCommon(), nil, e.abi, method)
	if err != nil {
		return 0, err
	}
	if len(unpacked) != 1 {
		return 0, xerrors.Errorf("decimals returned %d values: %w", len(unpacked), domain.ErrUpstreamQuery)
	}
	decimals, ok := unpacked[0].(uint8)
	if !ok {
		return 0, xerrors.Errorf("decimals returned %T: %w", unpacked[0], domain.ErrUpstreamQuery)
	}
	return int32(decimals), nil
}
