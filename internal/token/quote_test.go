package token

import (
	"testing"

	"tokenswap/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var ethEUR = domain.Rate{Price: "3100.5", Buy: "0.0005", Sell: "0.00048", Currency: "Euros"}

func TestCalculator_Quote(t *testing.T) {
	calc := NewCalculator(testCatalog())

	cases := []struct {
		name      string
		tokenIn   string
		amount    string
		direction domain.Direction
		want      string
	}{
		{name: "selling quote currency, exact input divides by buy", tokenIn: "EUR", amount: "100", direction: domain.ExactInput, want: "200000"},
		{name: "selling quote currency, exact output multiplies by buy", tokenIn: "EUR", amount: "200000", direction: domain.ExactOutput, want: "100"},
		{name: "selling base token, exact input multiplies by sell", tokenIn: "ETH", amount: "2", direction: domain.ExactInput, want: "0.00096"},
		{name: "selling base token, exact output divides by sell", tokenIn: "ETH", amount: "0.00096", direction: domain.ExactOutput, want: "2"},
		{name: "lower-case token is normalized", tokenIn: "eur", amount: "1", direction: domain.ExactInput, want: "2000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Quote(tc.tokenIn, decimal.RequireFromString(tc.amount), ethEUR, tc.direction)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestCalculator_Quote_RoundsToEightDecimals(t *testing.T) {
	calc := NewCalculator(testCatalog())
	r := domain.Rate{Buy: "3", Sell: "3", Currency: "Euros"}

	got, err := calc.Quote("EUR", decimal.NewFromInt(1), r, domain.ExactInput)
	require.NoError(t, err)
	require.Equal(t, "0.33333333", got.String())

	got, err = calc.Quote("EUR", decimal.NewFromInt(2), r, domain.ExactInput)
	require.NoError(t, err)
	require.Equal(t, "0.66666667", got.String())
}

func TestCalculator_Quote_DirectionRoundTrip(t *testing.T) {
	calc := NewCalculator(testCatalog())
	tolerance := decimal.New(1, -QuotePrecision)

	rates := []domain.Rate{
		ethEUR,
		{Buy: "3", Sell: "7", Currency: "Euros"},
		{Buy: "0.000016", Sell: "0.0000155", Currency: "Euros"},
	}
	for _, r := range rates {
		for _, tokenIn := range []string{"EUR", "ETH"} {
			amount := decimal.RequireFromString("123.456")

			out, err := calc.Quote(tokenIn, amount, r, domain.ExactInput)
			require.NoError(t, err)
			back, err := calc.Quote(tokenIn, out, r, domain.ExactOutput)
			require.NoError(t, err)

			// error introduced by rounding the intermediate result, scaled by the rate
			rate := decimal.RequireFromString(r.Buy)
			if tokenIn == "ETH" {
				rate = decimal.RequireFromString(r.Sell)
			}
			allowed := tolerance.Add(tolerance.Mul(rate)).Add(tolerance.Div(rate))
			require.True(t, back.Sub(amount).Abs().LessThanOrEqual(allowed),
				"tokenIn=%s rate=%+v: %s -> %s -> %s", tokenIn, r, amount, out, back)
		}
	}
}

func TestCalculator_Quote_InvalidRate(t *testing.T) {
	calc := NewCalculator(testCatalog())
	one := decimal.NewFromInt(1)

	cases := []struct {
		name    string
		tokenIn string
		rate    domain.Rate
	}{
		{name: "zero buy", tokenIn: "EUR", rate: domain.Rate{Buy: "0", Sell: "1", Currency: "Euros"}},
		{name: "missing buy", tokenIn: "EUR", rate: domain.Rate{Sell: "1", Currency: "Euros"}},
		{name: "non numeric buy", tokenIn: "EUR", rate: domain.Rate{Buy: "NaN", Sell: "1", Currency: "Euros"}},
		{name: "zero sell", tokenIn: "ETH", rate: domain.Rate{Buy: "1", Sell: "0.000", Currency: "Euros"}},
		{name: "missing sell", tokenIn: "ETH", rate: domain.Rate{Buy: "1", Currency: "Euros"}},
		{name: "negative sell", tokenIn: "ETH", rate: domain.Rate{Buy: "1", Sell: "-2", Currency: "Euros"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, dir := range []domain.Direction{domain.ExactInput, domain.ExactOutput} {
				_, err := calc.Quote(tc.tokenIn, one, tc.rate, dir)
				require.ErrorIs(t, err, domain.ErrInvalidRate)
			}
		})
	}
}

func TestCalculator_Quote_InvalidDirection(t *testing.T) {
	calc := NewCalculator(testCatalog())
	_, err := calc.Quote("EUR", decimal.NewFromInt(1), ethEUR, domain.Direction("SIDEWAYS"))
	require.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestPriceIn(t *testing.T) {
	got, err := PriceIn(decimal.RequireFromString("1.5"), ethEUR)
	require.NoError(t, err)
	require.Equal(t, "4650.75", got.String())

	_, err = PriceIn(decimal.NewFromInt(1), domain.Rate{Price: "0"})
	require.ErrorIs(t, err, domain.ErrInvalidRate)
}
