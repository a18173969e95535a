package repository

import (
	"time"

	"github.com/x-xyz/pricebot/base/ctx"
	hcdomain "github.com/x-xyz/pricebot/domain/healthcheck"
	"github.com/x-xyz/pricebot/service/chain"
)

const defaultTimeout = 2 * time.Second

type impl struct {
	chain   chain.Client
	timeout time.Duration
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface,
// a timeout of 0 falls back to defaultTimeout
func New(chainClient chain.Client, timeout time.Duration) hcdomain.HealthCheckRepo {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &impl{
		chain:   chainClient,
		timeout: timeout,
	}
}

func (im *impl) PingRPC(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, im.timeout)
	defer cancel()
	if _, err := im.chain.ChainID(ctx); err != nil {
		context.WithField("err", err).Error("ping rpc error")
		return err
	}
	return nil
}
