package api

import (
	_ "tokenswap/docs"
	"tokenswap/internal/platform/metrics"
	"tokenswap/internal/token/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(tokenHandler *handler.Handler, m *metrics.Metrics) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/tokens", tokenHandler.GetTokens)
		r.Get("/tokens/{currency}/pairs", tokenHandler.GetPairs)
		r.Get("/tokens/{token}/price", tokenHandler.GetPrice)

		r.Get("/swap/quote", tokenHandler.GetSwapQuote)
		r.Get("/swap/supported-tokens", tokenHandler.GetSwappableTokens)
		r.Post("/swap", tokenHandler.Swap)
	})
	return router
}
