package domain

import (
	"time"
)

// Rate is a single ticker entry of the provider's rate snapshot.
// Price, Buy and Sell are kept as decimal strings exactly as the provider sent them.
type Rate struct {
	Price      string `json:"price"`
	Buy        string `json:"buy"`
	Sell       string `json:"sell"`
	Timestamp  int64  `json:"timestamp"`
	HTimestamp string `json:"hTimestamp,omitempty"`
	Currency   string `json:"currency"`
}

// RateSnapshot maps a ticker ("ETHEUR") to its rate. A pair is stored under one ordering only.
type RateSnapshot struct {
	TakenAt time.Time
	Rates   map[string]Rate
}

type TokenPair struct {
	In  string
	Out string
}

// Tickers returns both concatenations a pair can be stored under.
func (p TokenPair) Tickers() (string, string) {
	return p.In + p.Out, p.Out + p.In
}
