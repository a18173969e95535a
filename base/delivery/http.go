package delivery

import (
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// MakeJsonResp writes data as json, an error is written as ErrorResponse.
// Responses are never cached, every request triggers a fresh execution.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	c.Response().Header().Set("Cache-Control", "no-store")

	if err, ok := data.(error); ok {
		return c.JSON(status, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(status, data)
}
