package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MidnightScheduler runs a task once per calendar day at 00:00 in a fixed
// location. Each cycle recomputes the next boundary from the wall clock
// rather than adding 24h to the previous one, so the schedule survives
// process restarts and DST shifts without drifting.
type MidnightScheduler struct {
	logger    *zap.Logger
	name      string
	loc       *time.Location
	taskFunc  func(context.Context) error
	stopCh    chan struct{}
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

func NewMidnightScheduler(logger *zap.Logger, name string, loc *time.Location, taskFunc func(context.Context) error) *MidnightScheduler {
	if loc == nil {
		loc = time.Local
	}
	return &MidnightScheduler{
		logger:   logger,
		name:     name,
		loc:      loc,
		taskFunc: taskFunc,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// NextMidnight returns 00:00 of the day after now, in now's location.
// time.Date normalizes the day overflow, which also handles month and
// year boundaries and DST transitions.
func NextMidnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}

// Start begins the scheduler.
func (s *MidnightScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Midnight scheduler started",
		zap.String("scheduler", s.name),
		zap.String("timezone", s.loc.String()))
	return nil
}

// Stop halts the scheduler, letting any in-flight run complete. Stopping
// twice, sequentially or concurrently, returns ErrSchedulerNotRunning
// rather than panicking: the flag flips and the channel closes under one
// lock.
func (s *MidnightScheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.isRunning = false
	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh

	s.logger.Info("Midnight scheduler stopped", zap.String("scheduler", s.name))
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *MidnightScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *MidnightScheduler) run(ctx context.Context) {
	defer close(s.doneCh)
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	for {
		next := NextMidnight(time.Now().In(s.loc))
		timer := time.NewTimer(time.Until(next))

		s.logger.Info("Next daily run scheduled",
			zap.String("scheduler", s.name),
			zap.Time("at", next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Midnight scheduler context canceled", zap.String("scheduler", s.name))
			return
		case <-s.stopCh:
			timer.Stop()
			s.logger.Info("Midnight scheduler stop signal received", zap.String("scheduler", s.name))
			return
		case <-timer.C:
			if err := s.taskFunc(ctx); err != nil {
				s.logger.Error("Daily task failed",
					zap.String("scheduler", s.name),
					zap.Error(err))
			}
		}
	}
}
