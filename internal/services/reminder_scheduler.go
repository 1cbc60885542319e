package services

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/kerbside/kerbside-api/internal/logger"
	"github.com/kerbside/kerbside-api/internal/types/business"
)

// ReminderDispatcher delivers a reminder payload to whatever channel the
// deployment wires in (email, in-app, queue). The scheduler only decides
// that and when a reminder fires; delivery belongs to the dispatcher.
type ReminderDispatcher interface {
	Dispatch(ctx context.Context, reminder business.Reminder) error
}

// ReminderScheduler runs periodic status-advancement sweeps over the
// deadline registry and hands fired reminders to the dispatcher.
type ReminderScheduler struct {
	deadlineService *DeadlineService
	dispatcher      ReminderDispatcher
	logger          *zap.Logger
	interval        time.Duration
	stopCh          chan struct{}
	wg              sync.WaitGroup
	stopOnce        sync.Once
}

// NewReminderScheduler creates a new reminder scheduler
func NewReminderScheduler(deadlineService *DeadlineService, dispatcher ReminderDispatcher, interval time.Duration) *ReminderScheduler {
	return &ReminderScheduler{
		deadlineService: deadlineService,
		dispatcher:      dispatcher,
		logger:          logger.Log,
		interval:        interval,
		stopCh:          make(chan struct{}),
	}
}

// Start begins the scheduled sweeps. A sweep runs immediately on startup,
// then on every tick. Because reminder matching is an exact day match, the
// interval should be comfortably under 24 hours: a sweep skipped on the
// matching day misses that reminder for good.
func (s *ReminderScheduler) Start() {
	s.logger.Info("starting reminder scheduler",
		zap.Duration("interval", s.interval))

	s.wg.Add(1)
	go s.run()
}

// Stop gracefully shuts down the scheduler
func (s *ReminderScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("stopping reminder scheduler")
		close(s.stopCh)
		s.wg.Wait()
	})
}

func (s *ReminderScheduler) run() {
	defer s.wg.Done()

	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep advances every registered deadline and dispatches fired reminders
func (s *ReminderScheduler) sweep() {
	result := s.deadlineService.AdvanceAll(time.Now().UTC())

	for _, reminder := range result.Reminders {
		if err := s.dispatchWithRetry(reminder); err != nil {
			// The latch is already set, so a reminder lost here will not
			// fire again. Loud log so operations can chase it manually.
			s.logger.Error("reminder dispatch failed after retries",
				zap.String("deadline_id", reminder.DeadlineID.String()),
				zap.String("kind", string(reminder.Kind)),
				zap.Int("days_until_due", reminder.DaysUntilDue),
				zap.Error(err))
			continue
		}

		s.logger.Info("dispatched reminder",
			zap.String("deadline_id", reminder.DeadlineID.String()),
			zap.String("kind", string(reminder.Kind)),
			zap.Int("days_until_due", reminder.DaysUntilDue))
	}
}

func (s *ReminderScheduler) dispatchWithRetry(reminder business.Reminder) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	return backoff.Retry(func() error {
		return s.dispatcher.Dispatch(ctx, reminder)
	}, backoff.WithContext(policy, ctx))
}
