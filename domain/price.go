package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/x-xyz/pricebot/base/ctx"
	pricefomatter "github.com/x-xyz/pricebot/base/price_fomatter"
)

// PriceConfig describes which token is quoted and how its price is printed
type PriceConfig struct {
	ChainId ChainId `validate:"required"`
	Token   Address `validate:"required,eth_addr"`
	Router  Address `validate:"required,eth_addr"`
	// Path starts at Token and ends at the stable coin, an optional middle
	// hop gives the price in the intermediate unit
	Path                 []Address `validate:"min=2,dive,eth_addr"`
	QuoteDecimals        int32     `validate:"gte=0,lte=77"`
	IntermediateDecimals int32     `validate:"gte=0,lte=77"`
	IntermediateSymbol   string
	Format               pricefomatter.Options
	IntermediateFormat   pricefomatter.Options
}

// HasIntermediate reports whether the path goes through a middle hop
func (c *PriceConfig) HasIntermediate() bool {
	return len(c.Path) > 2
}

type PriceUpdate struct {
	Token               Address   `json:"token"`
	Symbol              string    `json:"symbol"`
	Price               string    `json:"price"`
	PriceInIntermediate string    `json:"priceInIntermediate,omitempty"`
	IntermediateSymbol  string    `json:"intermediateSymbol,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Secrets are resolved per request, the bot must never run without them
type Secrets struct {
	BotToken  string
	ChannelId string
}

func (s Secrets) Validate() error {
	missing := []string{}
	if len(s.BotToken) == 0 {
		missing = append(missing, "DISCORD_TOKEN")
	}
	if len(s.ChannelId) == 0 {
		missing = append(missing, "DISCORD_CHANNEL_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

type PriceUsecase interface {
	// Quote reads and formats the current price without posting it
	Quote(c ctx.Ctx) (*PriceUpdate, error)
	// Update quotes the price and posts it to the channel named by secrets
	Update(c ctx.Ctx, secrets Secrets) (*PriceUpdate, error)
}

type Notifier interface {
	Notify(c ctx.Ctx, message string) error
}

type NotifierFactory func(Secrets) (Notifier, error)
