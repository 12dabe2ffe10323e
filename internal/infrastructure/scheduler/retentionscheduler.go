package scheduler

import (
	"context"
	"sync"
	"time"

	retentionUsecases "repairbay/internal/application/retention/usecases"
	"repairbay/internal/shared/logger"
)

// RetentionScheduler runs the customer retention sweep on a fixed interval.
// The first sweep runs immediately on startup so a long-stopped instance
// catches up without waiting a full interval.
type RetentionScheduler struct {
	sweepUC  *retentionUsecases.SweepExpiredCustomersUseCase
	logger   logger.Interface
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	interval time.Duration
}

func NewRetentionScheduler(
	sweepUC *retentionUsecases.SweepExpiredCustomersUseCase,
	interval time.Duration,
	logger logger.Interface,
) *RetentionScheduler {
	return &RetentionScheduler{
		sweepUC:  sweepUC,
		logger:   logger,
		stopChan: make(chan struct{}),
		interval: interval,
	}
}

// Start starts the scheduler
func (s *RetentionScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting retention scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully
func (s *RetentionScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping retention scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("retention scheduler stopped")
	})
}

func (s *RetentionScheduler) runLoop(ctx context.Context) {
	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("retention scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *RetentionScheduler) runSweep(ctx context.Context) {
	startTime := time.Now()

	purged, err := s.sweepUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("retention sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if purged > 0 {
		s.logger.Infow("retention sweep purged customers",
			"count", purged,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("retention sweep found no expired customers",
			"duration", time.Since(startTime),
		)
	}
}
