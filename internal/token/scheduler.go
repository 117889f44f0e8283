package token

import (
	"context"
	"sync"
	"time"

	"tokenswap/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultRefreshInterval = 60 * time.Second

type Scheduler struct {
	provider        adapters.SwapProvider
	repo            adapters.SnapshotRepository
	cache           adapters.SnapshotCache
	refreshInterval time.Duration
	maxRetries      uint64
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		refreshErr := RefreshSnapshot(jobCtx, execID, s.provider, s.repo, s.cache, NewRetryPolicy(s.maxRetries))
		if refreshErr != nil {
			logrus.Errorf("Refresh snapshot job %s failed: %v", execID, refreshErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

// Shutdown is safe to call more than once.
func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(repo adapters.SnapshotRepository, provider adapters.SwapProvider, cache adapters.SnapshotCache, refreshInterval time.Duration, maxRetries uint64) *Scheduler {
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}
	return &Scheduler{
		repo:            repo,
		provider:        provider,
		cache:           cache,
		refreshInterval: refreshInterval,
		maxRetries:      maxRetries,
	}
}
