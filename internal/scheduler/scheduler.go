package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs a task on a fixed interval.
type Scheduler struct {
	logger    *zap.Logger
	name      string
	interval  time.Duration
	taskFunc  func(context.Context) error
	stopCh    chan struct{}
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a new scheduler instance. The name identifies the
// scheduler in log output.
func NewScheduler(logger *zap.Logger, name string, interval time.Duration, taskFunc func(context.Context) error) *Scheduler {
	return &Scheduler{
		logger:   logger,
		name:     name,
		interval: interval,
		taskFunc: taskFunc,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Scheduler started",
		zap.String("scheduler", s.name),
		zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the scheduler, letting any in-flight task complete. The
// flag flips and the channel closes under one lock, so concurrent Stop
// calls cannot both reach the close.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.isRunning = false
	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh

	s.logger.Info("Scheduler stopped", zap.String("scheduler", s.name))
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.doneCh)
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	// Execute immediately on start
	if err := s.executeTask(ctx); err != nil {
		s.logger.Error("Failed to execute initial task",
			zap.String("scheduler", s.name),
			zap.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled", zap.String("scheduler", s.name))
			return
		case <-s.stopCh:
			s.logger.Info("Scheduler stop signal received", zap.String("scheduler", s.name))
			return
		case <-ticker.C:
			if err := s.executeTask(ctx); err != nil {
				s.logger.Error("Failed to execute scheduled task",
					zap.String("scheduler", s.name),
					zap.Error(err))
			}
		}
	}
}

func (s *Scheduler) executeTask(ctx context.Context) error {
	timeout := s.interval - time.Second
	if timeout <= 0 {
		timeout = s.interval
	}

	taskCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := s.taskFunc(taskCtx)
	if err != nil {
		s.logger.Error("Task execution failed",
			zap.String("scheduler", s.name),
			zap.Error(err))
	}
	return err
}
