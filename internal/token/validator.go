package token

import (
	"errors"
	"regexp"

	"tokenswap/internal/domain"
)

var (
	ErrTokenInRequired   = errors.New("token_in is required")
	ErrTokenOutRequired  = errors.New("token_out is required")
	ErrSameTokens        = errors.New("token_in and token_out must be different")
	ErrMalformedToken    = errors.New("token symbol must be 2-10 letters or digits")
	ErrAmountRequired    = errors.New("amount is required")
	ErrAmountMalformed   = errors.New("amount must be a positive plain decimal with at most 30 integer and 18 fractional digits")
	ErrDirectionInvalid  = errors.New("direction must be EXACT_INPUT or EXACT_OUTPUT")
	ErrTokenNotSwappable = errors.New("token is not available for swaps")
)

var symbolPattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

type Validator struct {
	catalog *Catalog
}

// ValidateToken expects an already normalized symbol.
func (v *Validator) ValidateToken(symbol string) error {
	if !symbolPattern.MatchString(symbol) {
		return ErrMalformedToken
	}
	return nil
}

func (v *Validator) ValidatePair(tokenIn, tokenOut string) error {
	if tokenIn == "" {
		return ErrTokenInRequired
	}
	if tokenOut == "" {
		return ErrTokenOutRequired
	}
	if err := v.ValidateToken(tokenIn); err != nil {
		return err
	}
	if err := v.ValidateToken(tokenOut); err != nil {
		return err
	}
	if tokenIn == tokenOut {
		return ErrSameTokens
	}
	return nil
}

func (v *Validator) ValidateAmount(amount string) error {
	if amount == "" {
		return ErrAmountRequired
	}
	if _, err := ParseAmount(amount); err != nil {
		return ErrAmountMalformed
	}
	return nil
}

func (v *Validator) ValidateDirection(direction string) error {
	if !domain.Direction(direction).Valid() {
		return ErrDirectionInvalid
	}
	return nil
}

// ValidateSwap additionally requires both tokens to have provider accounts.
func (v *Validator) ValidateSwap(tokenIn, tokenOut, amount string) error {
	if err := v.ValidatePair(tokenIn, tokenOut); err != nil {
		return err
	}
	if err := v.ValidateAmount(amount); err != nil {
		return err
	}
	if _, ok := v.catalog.AccountID(tokenIn); !ok {
		return ErrTokenNotSwappable
	}
	if _, ok := v.catalog.AccountID(tokenOut); !ok {
		return ErrTokenNotSwappable
	}
	return nil
}

func (v *Validator) SwappableTokens() []string {
	return v.catalog.SwappableSymbols()
}

func NewValidator(catalog *Catalog) *Validator {
	return &Validator{catalog: catalog}
}
