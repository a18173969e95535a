package usecase

import (
	"time"

	"github.com/x-xyz/pricebot/base/ctx"
	"github.com/x-xyz/pricebot/base/log"
	"github.com/x-xyz/pricebot/base/metrics"
	pricefomatter "github.com/x-xyz/pricebot/base/price_fomatter"
	"github.com/x-xyz/pricebot/domain"
	"golang.org/x/xerrors"
)

type PriceUseCaseCfg struct {
	Config          *domain.PriceConfig
	TokenRepo       domain.TokenRepo
	RouterRepo      domain.RouterRepo
	NotifierFactory domain.NotifierFactory
	// Now defaults to time.Now
	Now func() time.Time
}

type impl struct {
	cfg             *domain.PriceConfig
	tokenRepo       domain.TokenRepo
	routerRepo      domain.RouterRepo
	notifierFactory domain.NotifierFactory
	now             func() time.Time
	metrics         metrics.Service
}

func New(cfg *PriceUseCaseCfg) domain.PriceUsecase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		cfg:             cfg.Config,
		tokenRepo:       cfg.TokenRepo,
		routerRepo:      cfg.RouterRepo,
		notifierFactory: cfg.NotifierFactory,
		now:             now,
		metrics:         metrics.New("price"),
	}
}

func (im *impl) Quote(c ctx.Ctx) (*domain.PriceUpdate, error) {
	defer im.metrics.BumpTime("quote.time").End()

	update, err := im.quote(c)
	if err != nil {
		im.metrics.BumpSum("quote.err", 1)
		return nil, err
	}
	return update, nil
}

func (im *impl) Update(c ctx.Ctx, secrets domain.Secrets) (*domain.PriceUpdate, error) {
	if err := secrets.Validate(); err != nil {
		c.WithField("err", err).Error("secrets.Validate failed")
		return nil, err
	}

	notifier, err := im.notifierFactory(secrets)
	if err != nil {
		c.WithField("err", err).Error("notifierFactory failed")
		return nil, err
	}

	update, err := im.Quote(c)
	if err != nil {
		return nil, err
	}

	if err := notifier.Notify(c, BuildMessage(update)); err != nil {
		im.metrics.BumpSum("notify.err", 1)
		c.WithFields(log.Fields{
			"err":    err,
			"symbol": update.Symbol,
			"price":  update.Price,
		}).Error("notifier.Notify failed")
		return nil, err
	}

	c.WithFields(log.Fields{
		"symbol":              update.Symbol,
		"price":               update.Price,
		"priceInIntermediate": update.PriceInIntermediate,
	}).Info("price update sent")
	return update, nil
}

func (im *impl) quote(c ctx.Ctx) (*domain.PriceUpdate, error) {
	info, err := im.tokenRepo.FindOne(c, im.cfg.Token)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": im.cfg.Token,
		}).Error("tokenRepo.FindOne failed")
		return nil, err
	}

	amounts, err := im.routerRepo.GetAmountsOut(c, info.OneUnit(), im.cfg.Path)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"path": im.cfg.Path,
		}).Error("routerRepo.GetAmountsOut failed")
		return nil, err
	}
	if len(amounts) < len(im.cfg.Path) {
		c.WithFields(log.Fields{
			"amounts": amounts,
			"path":    im.cfg.Path,
		}).Error("too few amounts")
		return nil, xerrors.Errorf("got %d amounts for %d hops: %w", len(amounts), len(im.cfg.Path), domain.ErrUpstreamQuery)
	}

	price, err := pricefomatter.Format(pricefomatter.NewFixedPointAmount(amounts[len(im.cfg.Path)-1], im.cfg.QuoteDecimals), im.cfg.Format)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"amount": amounts[len(im.cfg.Path)-1],
		}).Error("pricefomatter.Format failed")
		return nil, err
	}

	update := &domain.PriceUpdate{
		Token:     im.cfg.Token,
		Symbol:    info.Symbol,
		Price:     price,
		UpdatedAt: im.now().UTC(),
	}

	if im.cfg.HasIntermediate() {
		inIntermediate, err := pricefomatter.Format(pricefomatter.NewFixedPointAmount(amounts[1], im.cfg.IntermediateDecimals), im.cfg.IntermediateFormat)
		if err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"amount": amounts[1],
			}).Error("pricefomatter.Format failed")
			return nil, err
		}
		update.PriceInIntermediate = inIntermediate
		update.IntermediateSymbol = im.cfg.IntermediateSymbol
	}

	return update, nil
}
