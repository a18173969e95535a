// Package pricefomatter turns on-chain fixed-point integers into display
// strings. Every routine works on big.Int and decimal strings only, so no
// digit of the magnitude is ever lost to float64 rounding.
package pricefomatter

import (
	"errors"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	DefaultWidth             = int32(9)
	DefaultSignificantDigits = 3
)

type Mode int

const (
	ModeExact Mode = iota
	ModeCompact
)

func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// ParseMode accepts the names used in config files: "exact" and "compact"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return ModeExact, nil
	case "compact":
		return ModeCompact, nil
	default:
		return ModeExact, xerrors.Errorf("unknown format mode %q: %w", s, ErrInvalidInput)
	}
}

// FixedPointAmount is Magnitude / 10^Decimals
type FixedPointAmount struct {
	Magnitude *big.Int
	Decimals  int32
}

// NewFixedPointAmount copies magnitude, a nil magnitude stays nil and is
// rejected by Format
func NewFixedPointAmount(magnitude *big.Int, decimals int32) FixedPointAmount {
	amount := FixedPointAmount{Decimals: decimals}
	if magnitude != nil {
		amount.Magnitude = new(big.Int).Set(magnitude)
	}
	return amount
}

type Options struct {
	Mode Mode
	// Width is the number of fractional digits printed in exact mode
	Width int32 `validate:"gte=1"`
	// SignificantDigits is how many digits follow the first nonzero one in
	// compact mode
	SignificantDigits int `validate:"gte=0"`
}

func DefaultOptions() Options {
	return Options{
		Mode:              ModeExact,
		Width:             DefaultWidth,
		SignificantDigits: DefaultSignificantDigits,
	}
}
