package domain

import (
	"errors"
	"fmt"

	pricefomatter "github.com/x-xyz/pricebot/base/price_fomatter"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrMissingConfig is returned before any network call when a required secret is absent
	ErrMissingConfig = errors.New("Missing environment variables")
	// ErrUpstreamQuery wraps failed or malformed blockchain reads
	ErrUpstreamQuery = errors.New("upstream query failed")
	// ErrDelivery wraps failed chat deliveries, see DeliveryError
	ErrDelivery = errors.New("delivery failed")
	// ErrInvalidInput is raised by the price formatter
	ErrInvalidInput = pricefomatter.ErrInvalidInput

	ErrInvalidAddress   = errors.New("Invalid address")
	ErrUnsupportedChain = errors.New("unsupported chain")
)

// DeliveryError keeps what the chat API answered to a rejected message
type DeliveryError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("Discord API error: %d %s - %s", e.StatusCode, e.Status, e.Body)
}

func (e *DeliveryError) Unwrap() error {
	return ErrDelivery
}
