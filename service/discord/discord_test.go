package discord

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/pricebot/base/ctx"
	"github.com/x-xyz/pricebot/domain"
)

var (
	mockCTX   = bCtx.Background()
	channelId = "1234567890"
)

type testsuite struct {
	suite.Suite
	transport *httpmock.MockTransport
	notifier  domain.Notifier
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.transport = httpmock.NewMockTransport()
	n, err := New(&NotifierCfg{
		BotToken:   "secret",
		ChannelId:  channelId,
		HttpClient: &http.Client{Transport: t.transport},
	})
	t.Require().NoError(err)
	t.notifier = n
}

func (t *testsuite) TestNotify() {
	var (
		auth    string
		payload map[string]interface{}
	)
	t.transport.RegisterResponder(http.MethodPost, discordgo.EndpointChannelMessages(channelId),
		func(req *http.Request) (*http.Response, error) {
			auth = req.Header.Get("authorization")
			body, err := ioutil.ReadAll(req.Body)
			if err != nil {
				return nil, err
			}
			if err := json.Unmarshal(body, &payload); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(http.StatusOK, `{"id":"1","channel_id":"1234567890","content":"hi"}`), nil
		})

	t.NoError(t.notifier.Notify(mockCTX, "hi"))
	t.Equal("Bot secret", auth)
	t.Equal("hi", payload["content"])
	t.Equal(1, t.transport.GetTotalCallCount())
}

func (t *testsuite) TestNotifyForbidden() {
	t.transport.RegisterResponder(http.MethodPost, discordgo.EndpointChannelMessages(channelId),
		httpmock.NewStringResponder(http.StatusForbidden, `{"message": "Missing Access", "code": 50001}`))

	err := t.notifier.Notify(mockCTX, "hi")
	t.Require().Error(err)
	t.True(errors.Is(err, domain.ErrDelivery))

	var deliveryErr *domain.DeliveryError
	t.Require().True(errors.As(err, &deliveryErr))
	t.Equal(http.StatusForbidden, deliveryErr.StatusCode)
	t.Contains(deliveryErr.Body, "Missing Access")
	t.Contains(err.Error(), "403")
	t.Contains(err.Error(), "Missing Access")

	// no retry
	t.Equal(1, t.transport.GetTotalCallCount())
}

func (t *testsuite) TestNotifyBadGatewayIsNotRetried() {
	t.transport.RegisterResponder(http.MethodPost, discordgo.EndpointChannelMessages(channelId),
		httpmock.NewStringResponder(http.StatusBadGateway, `upstream`))

	err := t.notifier.Notify(mockCTX, "hi")
	t.True(errors.Is(err, domain.ErrDelivery))
	t.Equal(1, t.transport.GetTotalCallCount())
}

func (t *testsuite) TestNotifyRateLimitIsNotRetried() {
	t.transport.RegisterResponder(http.MethodPost, discordgo.EndpointChannelMessages(channelId),
		httpmock.NewStringResponder(http.StatusTooManyRequests, `{"message": "You are being rate limited.", "retry_after": 0.01, "global": false}`))

	done := make(chan error, 1)
	go func() {
		done <- t.notifier.Notify(mockCTX, "hi")
	}()

	select {
	case err := <-done:
		t.True(errors.Is(err, domain.ErrDelivery))
	case <-time.After(2 * time.Second):
		t.FailNow("Notify kept retrying a rate limited request")
	}
	t.Equal(1, t.transport.GetTotalCallCount())
}

func (t *testsuite) TestNewMissingSecrets() {
	_, err := New(&NotifierCfg{ChannelId: channelId})
	t.ErrorIs(err, domain.ErrMissingConfig)

	_, err = NewFactory(0)(domain.Secrets{BotToken: "secret"})
	t.ErrorIs(err, domain.ErrMissingConfig)
}
