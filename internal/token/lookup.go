package token

import (
	"fmt"
	"slices"
	"strings"

	"tokenswap/internal/domain"
)

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// FindRate returns the rate stored under tokenIn+tokenOut or tokenOut+tokenIn.
func FindRate(snapshot domain.RateSnapshot, tokenIn, tokenOut string) (domain.Rate, error) {
	pair := domain.TokenPair{In: normalize(tokenIn), Out: normalize(tokenOut)}
	direct, reversed := pair.Tickers()

	if r, ok := snapshot.Rates[direct]; ok {
		return r, nil
	}
	if r, ok := snapshot.Rates[reversed]; ok {
		return r, nil
	}
	return domain.Rate{}, fmt.Errorf("%w: %s/%s", domain.ErrPairNotFound, pair.In, pair.Out)
}

// splitTicker separates "ETHEUR" into base "ETH" and quote "EUR" using the rate's quote currency.
func splitTicker(catalog *Catalog, ticker string, r domain.Rate) (string, string, bool) {
	quote := catalog.SymbolOf(r.Currency)
	if quote == "" || !strings.HasSuffix(ticker, quote) || len(ticker) == len(quote) {
		return "", "", false
	}
	return strings.TrimSuffix(ticker, quote), quote, true
}

// Tokens lists every base token and quote currency present in the snapshot.
func Tokens(catalog *Catalog, snapshot domain.RateSnapshot) []string {
	set := make(map[string]struct{}, len(snapshot.Rates))
	for ticker, r := range snapshot.Rates {
		base, quote, ok := splitTicker(catalog, ticker, r)
		if !ok {
			continue
		}
		set[base] = struct{}{}
		set[quote] = struct{}{}
	}
	return sortedKeys(set)
}

// Pairs lists tokens that can be traded against currency in either direction.
func Pairs(catalog *Catalog, snapshot domain.RateSnapshot, currency string) []string {
	currency = normalize(currency)
	set := make(map[string]struct{})
	for ticker, r := range snapshot.Rates {
		base, quote, ok := splitTicker(catalog, ticker, r)
		if !ok {
			continue
		}
		switch currency {
		case base:
			set[quote] = struct{}{}
		case quote:
			set[base] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
