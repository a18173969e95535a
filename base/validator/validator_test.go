package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"

	pricefomatter "github.com/x-xyz/pricebot/base/price_fomatter"
	"github.com/x-xyz/pricebot/domain"
)

type ValidatorTestSuite struct {
	suite.Suite
	v *validator.Validate
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.v = validator.New()
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func validConfig() *domain.PriceConfig {
	token := domain.Address("0xB770074eA2A8325440798fDF1c29B235b31922Ae")
	return &domain.PriceConfig{
		ChainId: 25,
		Token:   token,
		Router:  "0x145863Eb42Cf62847A6Ca784e6416C1682b1b2Ae",
		Path: []domain.Address{
			token,
			"0x5C7F8A570d578ED84E63fdFA7b1eE72dEae1AE23",
			"0xc21223249CA28397B4B6541dfFaEcC539BfF0c59",
		},
		QuoteDecimals:        6,
		IntermediateDecimals: 18,
		Format:               pricefomatter.DefaultOptions(),
		IntermediateFormat:   pricefomatter.DefaultOptions(),
	}
}

func (s *ValidatorTestSuite) TestValidatePriceConfig() {
	tests := []struct {
		desc   string
		modify func(*domain.PriceConfig)
		expErr error
	}{
		{
			desc:   "valid",
			modify: func(*domain.PriceConfig) {},
		},
		{
			desc:   "path too short",
			modify: func(c *domain.PriceConfig) { c.Path = c.Path[:1] },
			expErr: domain.ErrInvalidInput,
		},
		{
			desc:   "bad hop",
			modify: func(c *domain.PriceConfig) { c.Path[1] = "0x123" },
			expErr: domain.ErrInvalidInput,
		},
		{
			desc:   "path not starting at token",
			modify: func(c *domain.PriceConfig) { c.Path[0], c.Path[1] = c.Path[1], c.Path[0] },
			expErr: domain.ErrInvalidInput,
		},
		{
			desc:   "missing chain",
			modify: func(c *domain.PriceConfig) { c.ChainId = 0 },
			expErr: domain.ErrInvalidInput,
		},
		{
			desc:   "negative decimals",
			modify: func(c *domain.PriceConfig) { c.QuoteDecimals = -1 },
			expErr: domain.ErrInvalidInput,
		},
		{
			desc:   "zero width",
			modify: func(c *domain.PriceConfig) { c.Format.Width = 0 },
			expErr: domain.ErrInvalidInput,
		},
	}
	for _, t := range tests {
		cfg := validConfig()
		t.modify(cfg)
		err := ValidatePriceConfig(s.v, cfg)
		if t.expErr == nil {
			s.NoError(err, t.desc)
		} else {
			s.ErrorIs(err, t.expErr, t.desc)
		}
	}
}
