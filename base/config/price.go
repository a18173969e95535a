package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	pricefomatter "github.com/x-xyz/pricebot/base/price_fomatter"
	bValidator "github.com/x-xyz/pricebot/base/validator"
	"github.com/x-xyz/pricebot/domain"
)

// FormatOptions reads a formatter block such as price.format, unset keys keep
// pricefomatter.DefaultOptions
func FormatOptions(v *viper.Viper, key string) (pricefomatter.Options, error) {
	opts := pricefomatter.DefaultOptions()
	if s := v.GetString(key + ".mode"); len(s) > 0 {
		mode, err := pricefomatter.ParseMode(s)
		if err != nil {
			return opts, xerrors.Errorf("%s.mode: %w", key, err)
		}
		opts.Mode = mode
	}
	if v.IsSet(key + ".width") {
		opts.Width = v.GetInt32(key + ".width")
	}
	if v.IsSet(key + ".significantDigits") {
		opts.SignificantDigits = v.GetInt(key + ".significantDigits")
	}
	return opts, nil
}

// PriceConfig maps the rpc and price blocks onto domain.PriceConfig and validates it
func PriceConfig(v *viper.Viper, validate *validator.Validate) (*domain.PriceConfig, error) {
	format, err := FormatOptions(v, "price.format")
	if err != nil {
		return nil, err
	}
	intermediateFormat, err := FormatOptions(v, "price.intermediateFormat")
	if err != nil {
		return nil, err
	}

	path := []domain.Address{}
	for _, hop := range v.GetStringSlice("price.path") {
		path = append(path, domain.Address(hop))
	}

	cfg := &domain.PriceConfig{
		ChainId:              domain.ChainId(v.GetInt32("rpc.chainId")),
		Token:                domain.Address(v.GetString("price.token")),
		Router:               domain.Address(v.GetString("price.router")),
		Path:                 path,
		QuoteDecimals:        v.GetInt32("price.quoteDecimals"),
		IntermediateDecimals: v.GetInt32("price.intermediateDecimals"),
		IntermediateSymbol:   v.GetString("price.intermediateSymbol"),
		Format:               format,
		IntermediateFormat:   intermediateFormat,
	}
	if err := bValidator.ValidatePriceConfig(validate, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
