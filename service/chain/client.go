package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/pricebot/base/ctx"
	bEthereum "github.com/x-xyz/pricebot/base/ethereum"
	"github.com/x-xyz/pricebot/base/log"
	"github.com/x-xyz/pricebot/domain"
	"golang.org/x/xerrors"
)

type ClientCfg struct {
	ChainId        domain.ChainId
	RpcUrl         string
	MaxConcurrency int
}

type Client interface {
	// Call runs a read-only contract method, blk nil means latest
	Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	ChainID(ctx bCtx.Ctx) (*big.Int, error)
}

type clientImpl struct {
	chainId domain.ChainId
	client  domain.EthClientRepo
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": cfg.ChainId,
		}).Error("failed to dial rpc")
		return nil, xerrors.Errorf("dial rpc: %w", domain.ErrUpstreamQuery)
	}
	return NewClientWithEth(cfg.ChainId, bEthereum.NewThrottledClient(client, cfg.MaxConcurrency)), nil
}

func NewClientWithEth(chainId domain.ChainId, client domain.EthClientRepo) Client {
	return &clientImpl{
		chainId: chainId,
		client:  client,
	}
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": c.chainId,
			"address": addr.Hex(),
			"method":  method,
		}).Error("client.CallContract failed")
		return nil, xerrors.Errorf("%s: %v: %w", method, err, domain.ErrUpstreamQuery)
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": addr.Hex(),
			"method":  method,
		}).Error("abi.Unpack failed")
		return nil, xerrors.Errorf("unpack %s: %v: %w", method, err, domain.ErrUpstreamQuery)
	}
	return unpacked, nil
}

func (c *clientImpl) ChainID(ctx bCtx.Ctx) (*big.Int, error) {
	id, err := c.client.ChainID(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.ChainID failed")
		return nil, xerrors.Errorf("chain id: %v: %w", err, domain.ErrUpstreamQuery)
	}
	if id.Int64() != int64(c.chainId) {
		ctx.WithFields(log.Fields{
			"expected": c.chainId,
			"actual":   id,
		}).Error("rpc serves another chain")
		return nil, domain.ErrUnsupportedChain
	}
	return id, nil
}
