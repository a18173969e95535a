package discord

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/x-xyz/pricebot/base/ctx"
	"github.com/x-xyz/pricebot/base/log"
	"github.com/x-xyz/pricebot/domain"
	"golang.org/x/xerrors"
)

type NotifierCfg struct {
	BotToken  string
	ChannelId string
	Timeout   time.Duration
	// HttpClient replaces the session's client, mostly for tests
	HttpClient *http.Client
}

type notifier struct {
	channelId string
	session   *discordgo.Session
}

// New creates a REST-only session, no gateway connection is opened
func New(cfg *NotifierCfg) (domain.Notifier, error) {
	if len(cfg.BotToken) == 0 || len(cfg.ChannelId) == 0 {
		return nil, domain.ErrMissingConfig
	}

	session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotToken))
	if err != nil {
		return nil, xerrors.Errorf("discordgo.New: %w", err)
	}
	// a failed post surfaces to the caller, never retried: MaxRestRetries
	// covers 502s, ShouldRetryOnRateLimit turns a 429 into a RateLimitError
	session.MaxRestRetries = 0
	session.ShouldRetryOnRateLimit = false
	if cfg.HttpClient != nil {
		session.Client = cfg.HttpClient
	}
	if cfg.Timeout > 0 {
		session.Client.Timeout = cfg.Timeout
	}

	return &notifier{
		channelId: cfg.ChannelId,
		session:   session,
	}, nil
}

// NewFactory builds notifiers from the secrets resolved for a request
func NewFactory(timeout time.Duration) domain.NotifierFactory {
	return func(secrets domain.Secrets) (domain.Notifier, error) {
		return New(&NotifierCfg{
			BotToken:  secrets.BotToken,
			ChannelId: secrets.ChannelId,
			Timeout:   timeout,
		})
	}
}

func (n *notifier) Notify(c ctx.Ctx, message string) error {
	if _, err := n.session.ChannelMessageSend(n.channelId, message); err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil {
			deliveryErr := &domain.DeliveryError{
				StatusCode: restErr.Response.StatusCode,
				Status:     http.StatusText(restErr.Response.StatusCode),
				Body:       string(restErr.ResponseBody),
			}
			c.WithFields(log.Fields{
				"channelId":  n.channelId,
				"statusCode": deliveryErr.StatusCode,
				"body":       deliveryErr.Body,
			}).Error("Discord API Response")
			return deliveryErr
		}
		c.WithFields(log.Fields{
			"err":       err,
			"channelId": n.channelId,
		}).Error("session.ChannelMessageSend failed")
		return xerrors.Errorf("%v: %w", err, domain.ErrDelivery)
	}
	return nil
}
