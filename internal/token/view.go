package token

import (
	"tokenswap/internal/domain"

	"github.com/shopspring/decimal"
)

type QuoteView struct {
	TokenIn   string
	TokenOut  string
	Amount    decimal.Decimal
	Direction domain.Direction
	Quote     decimal.Decimal
}

type PriceView struct {
	Token    string
	Amount   decimal.Decimal
	Currency string
	Total    decimal.Decimal
}
