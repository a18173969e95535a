package repository

import (
	"strconv"
	"time"

	"github.com/viney-shih/goroutines"
	"github.com/x-xyz/pricebot/base/ctx"
	"github.com/x-xyz/pricebot/base/log"
	"github.com/x-xyz/pricebot/domain"
	"github.com/x-xyz/pricebot/domain/keys"
	"github.com/x-xyz/pricebot/service/cache"
	"github.com/x-xyz/pricebot/service/cache/provider/primitive"
	"github.com/x-xyz/pricebot/service/chain/contract"
)

type TokenRepoCfg struct {
	ChainId domain.ChainId
	Erc20   contract.Erc20Contract
	// CacheTtl of 0 disables caching
	CacheTtl time.Duration
}

type tokenRepo struct {
	chainId domain.ChainId
	erc20   contract.Erc20Contract
	cache   cache.Service
}

// NewTokenRepo reads erc20 metadata, symbol and decimals never change on
// chain so they are kept in memory for CacheTtl
func NewTokenRepo(cfg *TokenRepoCfg) domain.TokenRepo {
	r := &tokenRepo{
		chainId: cfg.ChainId,
		erc20:   cfg.Erc20,
	}
	if cfg.CacheTtl > 0 {
		r.cache = cache.New(cache.ServiceConfig{
			Ttl:   cfg.CacheTtl,
			Pfx:   keys.PfxToken,
			Cache: primitive.NewPrimitive("token_cache", 1),
		})
	}
	return r
}

func (r *tokenRepo) FindOne(c ctx.Ctx, address domain.Address) (*domain.TokenInfo, error) {
	if r.cache == nil {
		return r.fetch(c, address)
	}

	var info domain.TokenInfo
	key := keys.CacheKey(strconv.Itoa(int(r.chainId)), address.ToLowerStr())
	if err := r.cache.GetByFunc(c, key, &info, func() (interface{}, error) {
		return r.fetch(c, address)
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("cache.GetByFunc failed")
		return nil, err
	}
	return &info, nil
}

// fetch reads symbol and decimals in parallel
func (r *tokenRepo) fetch(c ctx.Ctx, address domain.Address) (*domain.TokenInfo, error) {
	b := goroutines.NewBatch(2, goroutines.WithBatchSize(2))
	defer b.Close()

	b.Queue(func() (interface{}, error) {
		return r.erc20.Symbol(c, address)
	})
	b.Queue(func() (interface{}, error) {
		return r.erc20.Decimals(c, address)
	})
	b.QueueComplete()

	info := &domain.TokenInfo{Address: address}
	var firstErr error
	for ret := range b.Results() {
		if ret.Error() != nil {
			if firstErr == nil {
				firstErr = ret.Error()
			}
			continue
		}
		switch v := ret.Value().(type) {
		case string:
			info.Symbol = v
		case int32:
			info.Decimals = v
		}
	}
	if firstErr != nil {
		c.WithFields(log.Fields{
			"err":     firstErr,
			"address": address,
		}).Error("failed to read token metadata")
		return nil, firstErr
	}
	return info, nil
}
