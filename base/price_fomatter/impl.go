package pricefomatter

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// Format renders amount according to opts. Compact mode only applies below
// one unit; larger values fall back to the exact rendering at opts.Width.
func Format(amount FixedPointAmount, opts Options) (string, error) {
	switch opts.Mode {
	case ModeExact:
		return FormatExact(amount.Magnitude, amount.Decimals, opts.Width)
	case ModeCompact:
		// widen first so compaction sees every digit the amount carries
		width := opts.Width
		if amount.Decimals > width {
			width = amount.Decimals
		}
		full, err := FormatExact(amount.Magnitude, amount.Decimals, width)
		if err != nil {
			return "", err
		}
		if !belowOne(full) {
			return FormatExact(amount.Magnitude, amount.Decimals, opts.Width)
		}
		return FormatCompact(full, opts.SignificantDigits)
	default:
		return "", xerrors.Errorf("mode %d: %w", opts.Mode, ErrInvalidInput)
	}
}

// FormatExact prints magnitude / 10^decimals with exactly width fractional
// digits. Digits beyond width are truncated, never rounded.
func FormatExact(magnitude *big.Int, decimals int32, width int32) (string, error) {
	if magnitude == nil {
		return "", xerrors.Errorf("nil magnitude: %w", ErrInvalidInput)
	}
	if magnitude.Sign() < 0 {
		return "", xerrors.Errorf("negative magnitude %s: %w", magnitude, ErrInvalidInput)
	}
	if decimals < 0 {
		return "", xerrors.Errorf("decimals %d: %w", decimals, ErrInvalidInput)
	}
	if width < 1 {
		return "", xerrors.Errorf("width %d: %w", width, ErrInvalidInput)
	}

	d := decimal.NewFromBigInt(magnitude, -decimals).Truncate(width)
	return d.StringFixed(width), nil
}

// FormatExactString is FormatExact for a magnitude given as decimal digits
func FormatExactString(magnitude string, decimals int32, width int32) (string, error) {
	if !isDigits(magnitude) {
		return "", xerrors.Errorf("magnitude %q: %w", magnitude, ErrInvalidInput)
	}
	m, ok := new(big.Int).SetString(magnitude, 10)
	if !ok {
		return "", xerrors.Errorf("magnitude %q: %w", magnitude, ErrInvalidInput)
	}
	return FormatExact(m, decimals, width)
}

// FormatCompact collapses the leading zeros of the fractional part:
// "0.0000123456" with 3 significant digits becomes "0.(4)1234".
//
// A value without fractional part is returned as its integer part, a value
// of one unit or more is returned unchanged.
func FormatCompact(value string, significantDigits int) (string, error) {
	if significantDigits < 0 {
		return "", xerrors.Errorf("significant digits %d: %w", significantDigits, ErrInvalidInput)
	}
	intPart, fracPart, hasFrac := strings.Cut(value, ".")
	if !isDigits(intPart) || (hasFrac && !isDigits(fracPart)) {
		return "", xerrors.Errorf("value %q: %w", value, ErrInvalidInput)
	}
	if !hasFrac {
		return intPart, nil
	}
	if strings.TrimLeft(intPart, "0") != "" {
		return value, nil
	}

	leadingZeros := len(fracPart) - len(strings.TrimLeft(fracPart, "0"))
	firstDigit := byte('0')
	rest := ""
	if leadingZeros < len(fracPart) {
		firstDigit = fracPart[leadingZeros]
		rest = fracPart[leadingZeros+1:]
	} else {
		// nothing significant, report an empty zero run
		leadingZeros = 0
	}

	var extra string
	if len(rest) >= significantDigits {
		extra = rest[:significantDigits]
	} else {
		extra = rest + strings.Repeat("0", significantDigits-len(rest))
	}

	var b strings.Builder
	b.Grow(len("0.()") + 4 + 1 + significantDigits)
	b.WriteString("0.(")
	b.WriteString(strconv.Itoa(leadingZeros))
	b.WriteByte(')')
	b.WriteByte(firstDigit)
	b.WriteString(extra)
	return b.String(), nil
}

// LeadingZeros counts the zeros between the decimal point and the first
// nonzero digit of value. It returns 0 when there is no nonzero digit.
func LeadingZeros(value string) int {
	_, frac, ok := strings.Cut(value, ".")
	if !ok {
		return 0
	}
	trimmed := strings.TrimLeft(frac, "0")
	if trimmed == "" {
		return 0
	}
	return len(frac) - len(trimmed)
}

func belowOne(value string) bool {
	intPart, _, _ := strings.Cut(value, ".")
	return strings.TrimLeft(intPart, "0") == ""
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
