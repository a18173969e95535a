package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/pricebot/base/config"
	"github.com/x-xyz/pricebot/base/ctx"
	"github.com/x-xyz/pricebot/base/log"
	"github.com/x-xyz/pricebot/domain"
	mmiddleware "github.com/x-xyz/pricebot/middleware"
	"github.com/x-xyz/pricebot/service/chain"
	"github.com/x-xyz/pricebot/service/chain/contract"
	"github.com/x-xyz/pricebot/service/discord"
	hc_delivery "github.com/x-xyz/pricebot/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/pricebot/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/pricebot/stores/healthcheck/usecase"
	price_delivery "github.com/x-xyz/pricebot/stores/price/delivery/http"
	price_usecase "github.com/x-xyz/pricebot/stores/price/usecase"
	token_repository "github.com/x-xyz/pricebot/stores/token/repository"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.String("address", "", "listen address, overrides server.address")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	// secrets and the rpc endpoint come from the environment when set
	viper.BindEnv("discord.token", "DISCORD_TOKEN")
	viper.BindEnv("discord.channelId", "DISCORD_CHANNEL_ID")
	viper.BindEnv("rpc.url", "RPC_URL")
	viper.BindEnv("datadog_host", "DATADOG_HOST")

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func mustPriceConfig() *domain.PriceConfig {
	cfg, err := config.PriceConfig(viper.GetViper(), validator.New())
	if err != nil {
		log.Log().WithField("err", err).Panic("invalid price config")
	}
	return cfg
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	context := ctx.Background()

	priceCfg := mustPriceConfig()

	// init chain service
	context.Info("init chain client")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		ChainId:        priceCfg.ChainId,
		RpcUrl:         viper.GetString("rpc.url"),
		MaxConcurrency: viper.GetInt("rpc.maxConcurrency"),
	})
	if err != nil {
		log.Log().WithField("err", err).Panic("chain.NewClient failed")
	}

	erc20 := contract.NewErc20(chainService)
	router := contract.NewRouter(chainService, priceCfg.Router)

	tokenRepo := token_repository.NewTokenRepo(&token_repository.TokenRepoCfg{
		ChainId:  priceCfg.ChainId,
		Erc20:    erc20,
		CacheTtl: viper.GetDuration("token.cacheTtl"),
	})

	price := price_usecase.New(&price_usecase.PriceUseCaseCfg{
		Config:          priceCfg,
		TokenRepo:       tokenRepo,
		RouterRepo:      router,
		NotifierFactory: discord.NewFactory(viper.GetDuration("discord.timeout")),
	})
	hc := hc_usecase.New(hc_repo.New(chainService, viper.GetDuration("rpc.healthTimeout")))

	hc_delivery.New(e, hc)
	price_delivery.New(e, price, func() domain.Secrets {
		return domain.Secrets{
			BotToken:  viper.GetString("discord.token"),
			ChannelId: viper.GetString("discord.channelId"),
		}
	})

	address := viper.GetString("server.address")
	if a := viper.GetString("address"); len(a) > 0 {
		address = a
	}
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
