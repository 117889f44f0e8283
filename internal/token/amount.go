package token

import (
	"fmt"
	"regexp"

	"tokenswap/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	maxAmountIntDigits   = 30
	maxAmountScaleDigits = 18
)

// Plain decimal literals only: no sign, no exponent, bounded digits.
var amountPattern = regexp.MustCompile(fmt.Sprintf(`^[0-9]{1,%d}(\.[0-9]{1,%d})?$`, maxAmountIntDigits, maxAmountScaleDigits))

// ParseAmount parses a user supplied amount. Exponent notation is rejected so a short
// input cannot expand into an arbitrarily large number.
func ParseAmount(raw string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(raw) {
		return decimal.Decimal{}, fmt.Errorf("%w: %.40q is not a plain decimal with at most %d integer and %d fractional digits",
			domain.ErrInvalidAmount, raw, maxAmountIntDigits, maxAmountScaleDigits)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %.40q is not a number", domain.ErrInvalidAmount, raw)
	}
	if !v.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: must be positive", domain.ErrInvalidAmount)
	}
	return v, nil
}
