package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/pricebot/base/ctx"
)

type middlewareSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) SetupTest() {
	m := InitMiddleware()
	s.e = echo.New()
	s.e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return "req-1" },
	}))
	s.e.Use(m.ResponseLogger())
	s.e.Use(m.AddContext())
}

func (s *middlewareSuite) TestAddContext() {
	var requestID interface{}
	s.e.GET("/ping", func(c echo.Context) error {
		requestID = ctx.Value(c.Get("ctx").(ctx.Ctx), "requestID")
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("req-1", requestID)
	s.Equal("req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func (s *middlewareSuite) TestResponseLoggerHandlesErrors() {
	s.e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	s.Equal(http.StatusTeapot, rec.Code)
}
