package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tokenswap/internal/adapters/cache"
	"tokenswap/internal/adapters/httpclient"
	"tokenswap/internal/adapters/postgres"
	"tokenswap/internal/api"
	"tokenswap/internal/config"
	"tokenswap/internal/platform/db"
	httpserver "tokenswap/internal/platform/http"
	"tokenswap/internal/platform/metrics"
	"tokenswap/internal/signer"
	"tokenswap/internal/token"
	"tokenswap/internal/token/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	if err = appCfg.Validate(); err != nil {
		logrus.WithError(err).Error("Invalid config")
		return err
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if appCfg.DbServer.Migrate {
		if err = db.Migrate(startupCtx, pool); err != nil {
			logrus.WithError(err).Error("Failed to apply migrations")
			return err
		}
		logrus.Info("✅ Migrations applied")
	}

	// Token catalog
	catalog := newCatalog(appCfg.Catalog)
	if len(catalog.SwappableSymbols()) == 0 {
		logrus.Warnf("No currency has a provider account, swaps will be rejected; set catalog.currencies[].account_id or %s", config.AccountEnvVar("<SYMBOL>"))
	}

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External clients
	appMetrics := metrics.Default()
	providerClient := httpclient.NewSwapProviderClient(
		appCfg.Provider.BaseURL,
		appCfg.Provider.APIKey,
		signer.New(appCfg.Provider.APISecret),
		httpclient.WithHTTPClient(baseHTTPClient),
		httpclient.WithEndpoints(appCfg.Provider.SwapEndpoint, appCfg.Provider.TickersEndpoint),
		httpclient.WithMetrics(appMetrics),
	)

	// Repositories and cache
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	snapshotCache, err := cache.NewSnapshotCache(appCfg.Cache.MaxItems, time.Duration(appCfg.Cache.TTLSec)*time.Second)
	if err != nil {
		logrus.WithError(err).Error("Failed to create snapshot cache")
		return err
	}
	defer snapshotCache.Close()

	// Services
	tokenService := token.NewService(snapshotRepo, snapshotCache, providerClient, catalog, appCfg.Provider.UserID)
	tokenValidator := token.NewValidator(catalog)
	scheduler := token.NewScheduler(
		snapshotRepo,
		providerClient,
		snapshotCache,
		time.Duration(appCfg.Scheduler.RefreshIntervalSec)*time.Second,
		appCfg.Scheduler.MaxRetries,
	)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	tokenHandler := handler.NewTokenHandler(tokenValidator, tokenService)
	router := api.NewRouter(tokenHandler, appMetrics)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func newCatalog(cfg config.Catalog) *token.Catalog {
	currencies := make([]token.Currency, 0, len(cfg.Currencies))
	for _, c := range cfg.Currencies {
		currencies = append(currencies, token.Currency{
			Symbol:    c.Symbol,
			Name:      c.Name,
			AccountID: c.AccountID,
			Decimals:  c.Decimals,
		})
	}
	return token.NewCatalog(cfg.LocaleCurrency, cfg.DefaultDecimals, currencies)
}
