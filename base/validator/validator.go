package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"

	"github.com/x-xyz/pricebot/domain"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// ValidatePriceConfig checks the struct tags of cfg and that the quote path
// starts at the quoted token
func ValidatePriceConfig(v *validator.Validate, cfg *domain.PriceConfig) error {
	if err := v.Struct(cfg); err != nil {
		return xerrors.Errorf("price config: %v: %w", err, domain.ErrInvalidInput)
	}
	if !cfg.Path[0].Equals(cfg.Token) {
		return xerrors.Errorf("price config: path starts at %s, not at token %s: %w", cfg.Path[0], cfg.Token, domain.ErrInvalidInput)
	}
	if !IsValidAddress(string(cfg.Router)) {
		return xerrors.Errorf("price config: router %s: %w", cfg.Router, domain.ErrInvalidAddress)
	}
	return nil
}
