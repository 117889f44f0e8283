package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"tokenswap/internal/adapters"
	"tokenswap/internal/domain"
	"tokenswap/internal/platform/metrics"
	"tokenswap/internal/token"
	"tokenswap/internal/token/handler"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	snapshot domain.RateSnapshot
}

func (r *stubRepo) GetLatest(context.Context) (domain.RateSnapshot, error) { return r.snapshot, nil }
func (r *stubRepo) Save(context.Context, domain.RateSnapshot) error { return nil }

type stubProvider struct {
	got domain.ProviderSwapOrder
}

func (p *stubProvider) Swap(_ context.Context, order domain.ProviderSwapOrder) (domain.SwapOrder, error) {
	p.got = order
	return domain.SwapOrder{
		ID:     "ord-9",
		Debit:  domain.OrderLeg{Currency: "EUR", Amount: "10000", AmountFloat: "100"},
		Credit: domain.OrderLeg{Currency: "ETH", Amount: "50000000000000000", AmountFloat: "0.05"},
	}, nil
}

func (p *stubProvider) GetTickers(context.Context) (map[string]domain.Rate, error) { return nil, nil }

var _ adapters.SwapProvider = (*stubProvider)(nil)

func newTestRouter(t *testing.T) (http.Handler, *stubProvider) {
	t.Helper()
	catalog := token.NewCatalog("EUR", 2, []token.Currency{
		{Symbol: "EUR", Name: "Euros", AccountID: "acc-eur"},
		{Symbol: "ETH", Name: "Ethereum", AccountID: "acc-eth", Decimals: 18},
	})
	repo := &stubRepo{snapshot: domain.RateSnapshot{
		TakenAt: time.Now(),
		Rates: map[string]domain.Rate{
			"ETHEUR": {Price: "3100.5", Buy: "0.0005", Sell: "0.00048", Currency: "Euros"},
		},
	}}
	provider := &stubProvider{}
	service := token.NewService(repo, nil, provider, catalog, "user-1")
	h := handler.NewTokenHandler(token.NewValidator(catalog), service)
	return NewRouter(h, metrics.New()), provider
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_SwapQuote(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet,
		"/api/v1/swap/quote?token_in=EUR&token_out=ETH&amount=100&direction=EXACT_INPUT", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res handler.GetSwapQuoteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "200000", res.Quote)
}

func TestRouter_RejectsExponentAndOversizedAmounts(t *testing.T) {
	router, provider := newTestRouter(t)
	amounts := []string{"1e5", "1E-3", "1e20000000", strings.Repeat("9", 5000)}

	for _, amount := range amounts {
		t.Run(fmt.Sprintf("%.12s", amount), func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet,
				"/api/v1/swap/quote?token_in=EUR&token_out=ETH&direction=EXACT_INPUT&amount="+url.QueryEscape(amount), nil))
			require.Equal(t, http.StatusBadRequest, rr.Code)

			rr = httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tokens/ETH/price?amount="+url.QueryEscape(amount), nil))
			require.Equal(t, http.StatusBadRequest, rr.Code)

			body, err := json.Marshal(map[string]string{"token_in": "ETH", "token_out": "EUR", "amount": amount})
			require.NoError(t, err)
			rr = httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/swap", bytes.NewReader(body)))
			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
	require.Empty(t, provider.got.Amount)
}

func TestRouter_Pairs(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tokens/eur/pairs", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res handler.GetPairsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, []string{"ETH"}, res.Pairs)
}

func TestRouter_SwapUsesForwardedIP(t *testing.T) {
	router, provider := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/swap",
		bytes.NewBufferString(`{"token_in":"EUR","token_out":"ETH","amount":"100"}`))
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "203.0.113.9", provider.got.IP)
	require.Equal(t, "user-1", provider.got.UserID)
	require.Equal(t, "acc-eur", provider.got.SourceAccountID)
	require.Equal(t, "acc-eth", provider.got.DestinationAccountID)
	require.Equal(t, "10000", provider.got.Amount)
}

func TestRouter_Metrics(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
}
