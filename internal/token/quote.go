package token

import (
	"fmt"

	"tokenswap/internal/domain"

	"github.com/shopspring/decimal"
)

// QuotePrecision is the number of decimal places a quote is rounded to.
const QuotePrecision = 8

type Calculator struct {
	catalog *Catalog
}

// Quote returns the counter-amount of a swap.
//
// When tokenIn is the rate's quote currency the buy rate is used (EXACT_INPUT divides,
// EXACT_OUTPUT multiplies); otherwise the sell rate is used the other way round.
func (c *Calculator) Quote(tokenIn string, amount decimal.Decimal, r domain.Rate, direction domain.Direction) (decimal.Decimal, error) {
	if !direction.Valid() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, direction)
	}

	if normalize(tokenIn) == c.catalog.SymbolOf(r.Currency) {
		buy, err := parseRate("buy", r.Buy)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if direction == domain.ExactInput {
			return amount.DivRound(buy, QuotePrecision), nil
		}
		return amount.Mul(buy).Round(QuotePrecision), nil
	}

	sell, err := parseRate("sell", r.Sell)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if direction == domain.ExactInput {
		return amount.Mul(sell).Round(QuotePrecision), nil
	}
	return amount.DivRound(sell, QuotePrecision), nil
}

// PriceIn converts amount of a token into the quote currency using the rate's price.
func PriceIn(amount decimal.Decimal, r domain.Rate) (decimal.Decimal, error) {
	price, err := parseRate("price", r.Price)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.Mul(price).Round(QuotePrecision), nil
}

func parseRate(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is missing", domain.ErrInvalidRate, field)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %q is not a number", domain.ErrInvalidRate, field, raw)
	}
	if !v.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must be positive, got %s", domain.ErrInvalidRate, field, raw)
	}
	return v, nil
}

func NewCalculator(catalog *Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}
