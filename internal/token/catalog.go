package token

import (
	"maps"
	"slices"
	"strings"
)

const defaultDecimals = 2

// Currency describes a token the service knows about.
type Currency struct {
	Symbol    string
	Name      string
	AccountID string
	Decimals  int32
}

// Catalog is the read-only token configuration: display names of quote currencies,
// provider account ids and minor-unit decimals.
type Catalog struct {
	localeCurrency  string
	defaultDecimals int32
	symbolsByName   map[string]string // lower-cased name -> symbol
	accounts        map[string]string
	decimals        map[string]int32
}

func (c *Catalog) LocaleCurrency() string { return c.localeCurrency }

// SymbolOf maps a rate's currency name ("Euros") to its symbol ("EUR").
// Unknown names are returned upper-cased, as providers sometimes send the symbol itself.
func (c *Catalog) SymbolOf(currencyName string) string {
	name := strings.TrimSpace(currencyName)
	if symbol, ok := c.symbolsByName[strings.ToLower(name)]; ok {
		return symbol
	}
	return strings.ToUpper(name)
}

func (c *Catalog) AccountID(symbol string) (string, bool) {
	id, ok := c.accounts[symbol]
	return id, ok
}

func (c *Catalog) Decimals(symbol string) int32 {
	if d, ok := c.decimals[symbol]; ok {
		return d
	}
	return c.defaultDecimals
}

// SwappableSymbols lists symbols that have a provider account.
func (c *Catalog) SwappableSymbols() []string {
	symbols := slices.Collect(maps.Keys(c.accounts))
	slices.Sort(symbols)
	return symbols
}

func NewCatalog(localeCurrency string, defaultDec int32, currencies []Currency) *Catalog {
	if defaultDec <= 0 {
		defaultDec = defaultDecimals
	}
	c := &Catalog{
		localeCurrency:  strings.ToUpper(strings.TrimSpace(localeCurrency)),
		defaultDecimals: defaultDec,
		symbolsByName:   make(map[string]string, len(currencies)),
		accounts:        make(map[string]string, len(currencies)),
		decimals:        make(map[string]int32, len(currencies)),
	}
	for _, cur := range currencies {
		symbol := strings.ToUpper(strings.TrimSpace(cur.Symbol))
		if symbol == "" {
			continue
		}
		if cur.Name != "" {
			c.symbolsByName[strings.ToLower(strings.TrimSpace(cur.Name))] = symbol
		}
		if cur.AccountID != "" {
			c.accounts[symbol] = cur.AccountID
		}
		if cur.Decimals > 0 {
			c.decimals[symbol] = cur.Decimals
		}
	}
	return c
}
