package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tokenswap/internal/adapters"
	"tokenswap/internal/domain"
	"tokenswap/internal/platform/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

const perAttemptTimeout = 5 * time.Second

var ErrEmptySnapshot = errors.New("provider returned an empty rate snapshot")

// RefreshSnapshot pulls the current tickers from the provider and stores them as the newest snapshot.
func RefreshSnapshot(ctx context.Context, execID string, provider adapters.SwapProvider, repo adapters.SnapshotRepository, cache adapters.SnapshotCache, policy backoff.BackOff) (err error) {
	takenAt := time.Now().UTC()
	defer func() { metrics.Default().ObserveRefresh(takenAt, err) }()

	// STEP 1: fetching tickers, retrying transient failures according to policy
	var tickers map[string]domain.Rate
	attempt := 0
	op := func() error {
		attempt++
		reqCtx, cancel := context.WithTimeout(ctx, perAttemptTimeout)
		defer cancel()

		res, fetchErr := provider.GetTickers(reqCtx)
		if fetchErr != nil {
			logrus.Warnf("Fetching tickers failed on attempt %d; execID: %s; err: %s", attempt, execID, fetchErr)
			if isPermanent(fetchErr) {
				return backoff.Permanent(fetchErr)
			}
			return fetchErr
		}
		tickers = res
		return nil
	}
	if err = backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		return fmt.Errorf("failed to fetch tickers: %w", err)
	}

	if len(tickers) == 0 {
		return ErrEmptySnapshot
	}

	// STEP 2: storing snapshot, then publishing it to the cache so readers see it right away
	snapshot := domain.RateSnapshot{TakenAt: takenAt, Rates: tickers}
	if err = repo.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	if cache != nil {
		cache.Set(snapshot)
	}

	logrus.Infof("Snapshot with %d tickers stored; execID: %s", len(tickers), execID)
	return nil
}

// isPermanent reports provider rejections that a retry cannot fix (bad credentials, bad request).
func isPermanent(err error) bool {
	var perr *domain.ProviderError
	if !errors.As(err, &perr) {
		return false
	}
	return perr.StatusCode >= http.StatusBadRequest && perr.StatusCode < http.StatusInternalServerError && perr.StatusCode != http.StatusTooManyRequests
}

// NewRetryPolicy is an exponential backoff capped at maxRetries extra attempts.
func NewRetryPolicy(maxRetries uint64) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	return backoff.WithMaxRetries(b, maxRetries)
}
