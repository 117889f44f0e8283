package token

import (
	"context"
	"fmt"

	"tokenswap/internal/adapters"
	"tokenswap/internal/domain"
	"tokenswap/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

type Service struct {
	repo     adapters.SnapshotRepository
	cache    adapters.SnapshotCache
	provider adapters.SwapProvider
	catalog  *Catalog
	calc     *Calculator
	userID   string
}

// LatestSnapshot returns the most recent snapshot, served from cache when possible.
func (s *Service) LatestSnapshot(ctx context.Context) (domain.RateSnapshot, error) {
	if s.cache != nil {
		if snapshot, ok := s.cache.Get(); ok {
			return snapshot, nil
		}
	}
	snapshot, err := s.repo.GetLatest(ctx)
	if err != nil {
		return domain.RateSnapshot{}, err
	}
	if s.cache != nil {
		s.cache.Set(snapshot)
	}
	return snapshot, nil
}

func (s *Service) Tokens(ctx context.Context) ([]string, error) {
	snapshot, err := s.LatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Tokens(s.catalog, snapshot), nil
}

func (s *Service) Pairs(ctx context.Context, currency string) ([]string, error) {
	snapshot, err := s.LatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Pairs(s.catalog, snapshot, currency), nil
}

// PriceInLocale values amount of token in the locale currency.
func (s *Service) PriceInLocale(ctx context.Context, token string, amount string) (PriceView, error) {
	token = normalize(token)
	qty, err := ParseAmount(amount)
	if err != nil {
		return PriceView{}, err
	}
	view := PriceView{Token: token, Amount: qty, Currency: s.catalog.LocaleCurrency()}

	if token == view.Currency {
		view.Total = qty
		return view, nil
	}

	snapshot, err := s.LatestSnapshot(ctx)
	if err != nil {
		return PriceView{}, err
	}
	r, ok := snapshot.Rates[token+view.Currency]
	if !ok {
		return PriceView{}, fmt.Errorf("%w: %s/%s", domain.ErrPairNotFound, token, view.Currency)
	}
	view.Total, err = PriceIn(qty, r)
	if err != nil {
		return PriceView{}, err
	}
	return view, nil
}

func (s *Service) QuoteSwap(ctx context.Context, req domain.SwapQuoteRequest) (view QuoteView, err error) {
	defer func() { metrics.Default().ObserveQuote(directionLabel(req.Direction), err) }()

	if !req.Direction.Valid() {
		return QuoteView{}, fmt.Errorf("%w: %.20q", domain.ErrInvalidDirection, req.Direction)
	}
	qty, err := ParseAmount(req.Amount)
	if err != nil {
		return QuoteView{}, err
	}
	snapshot, err := s.LatestSnapshot(ctx)
	if err != nil {
		return QuoteView{}, err
	}
	r, err := FindRate(snapshot, req.TokenIn, req.TokenOut)
	if err != nil {
		return QuoteView{}, err
	}
	quote, err := s.calc.Quote(req.TokenIn, qty, r, req.Direction)
	if err != nil {
		return QuoteView{}, err
	}
	return QuoteView{
		TokenIn:   normalize(req.TokenIn),
		TokenOut:  normalize(req.TokenOut),
		Amount:    qty,
		Direction: req.Direction,
		Quote:     quote,
	}, nil
}

// Swap forwards the swap to the provider. The amount is converted into minor units of TokenIn.
func (s *Service) Swap(ctx context.Context, req domain.SwapRequest) (order domain.SwapOrder, err error) {
	defer func() { metrics.Default().ObserveSwap(err) }()

	tokenIn, tokenOut := normalize(req.TokenIn), normalize(req.TokenOut)
	source, ok := s.catalog.AccountID(tokenIn)
	if !ok {
		return domain.SwapOrder{}, fmt.Errorf("%w: %s", domain.ErrTokenUnsupported, tokenIn)
	}
	destination, ok := s.catalog.AccountID(tokenOut)
	if !ok {
		return domain.SwapOrder{}, fmt.Errorf("%w: %s", domain.ErrTokenUnsupported, tokenOut)
	}
	qty, err := ParseAmount(req.Amount)
	if err != nil {
		return domain.SwapOrder{}, err
	}

	providerOrder := domain.ProviderSwapOrder{
		UserID:               s.userID,
		SourceAccountID:      source,
		DestinationAccountID: destination,
		Amount:               ToMinorUnits(s.catalog, tokenIn, qty).String(),
		IP:                   req.IP,
	}
	order, err = s.provider.Swap(ctx, providerOrder)
	if err != nil {
		return domain.SwapOrder{}, err
	}
	logrus.WithFields(logrus.Fields{"token_in": tokenIn, "token_out": tokenOut, "order_id": order.ID}).Info("swap accepted by provider")
	return order, nil
}

// directionLabel keeps metric label values bounded.
func directionLabel(d domain.Direction) string {
	if !d.Valid() {
		return "invalid"
	}
	return string(d)
}

func NewService(repo adapters.SnapshotRepository, cache adapters.SnapshotCache, provider adapters.SwapProvider, catalog *Catalog, userID string) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		provider: provider,
		catalog:  catalog,
		calc:     NewCalculator(catalog),
		userID:   userID,
	}
}
