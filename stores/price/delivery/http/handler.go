package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/pricebot/base/ctx"
	"github.com/x-xyz/pricebot/base/delivery"
	"github.com/x-xyz/pricebot/domain"
)

// SecretsProvider is asked for the bot secrets on every request
type SecretsProvider func() domain.Secrets

type updateResponse struct {
	Success             bool   `json:"success"`
	Message             string `json:"message"`
	Price               string `json:"price"`
	PriceInIntermediate string `json:"priceInIntermediate,omitempty"`
}

type quoteResponse struct {
	Success bool `json:"success"`
	*domain.PriceUpdate
}

type priceHandler struct {
	price   domain.PriceUsecase
	secrets SecretsProvider
}

func New(e *echo.Echo, us domain.PriceUsecase, secrets SecretsProvider) {
	handler := &priceHandler{
		price:   us,
		secrets: secrets,
	}
	g := e.Group("/api")
	g.GET("/discord", handler.discord)
	g.GET("/price", handler.quote)
}

func (h *priceHandler) discord(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	secrets := h.secrets()
	if err := secrets.Validate(); err != nil {
		context.WithField("err", err).Error("secrets.Validate failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, domain.ErrMissingConfig)
	}

	update, err := h.price.Update(context, secrets)
	if err != nil {
		context.WithField("err", err).Error("price.Update failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, updateResponse{
		Success:             true,
		Message:             "Price update sent successfully",
		Price:               update.Price,
		PriceInIntermediate: update.PriceInIntermediate,
	})
}

func (h *priceHandler) quote(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	update, err := h.price.Quote(context)
	if err != nil {
		context.WithField("err", err).Error("price.Quote failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, quoteResponse{
		Success:     true,
		PriceUpdate: update,
	})
}
