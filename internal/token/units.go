package token

import "github.com/shopspring/decimal"

// ToMinorUnits converts amount into the smallest unit of symbol (wei for ETH, cents by default).
// Fractions below one minor unit are truncated.
func ToMinorUnits(catalog *Catalog, symbol string, amount decimal.Decimal) decimal.Decimal {
	return amount.Shift(catalog.Decimals(normalize(symbol))).Truncate(0)
}
