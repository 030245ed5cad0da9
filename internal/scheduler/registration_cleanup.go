// Package scheduler wires periodic maintenance onto the task queue.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/badcoders/filmbase/internal/tasks"
)

// RegistrationCleanupScheduler periodically enqueues a cleanup task that
// reaps expired registration codes.
type RegistrationCleanupScheduler struct {
	tasks    *tasks.Client
	schedule string
	codeTTL  time.Duration

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewRegistrationCleanupScheduler creates a new scheduler instance.
func NewRegistrationCleanupScheduler(client *tasks.Client, schedule string, codeTTL time.Duration) *RegistrationCleanupScheduler {
	return &RegistrationCleanupScheduler{
		tasks:    client,
		schedule: schedule,
		codeTTL:  codeTTL,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *RegistrationCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.enqueueCleanup()
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Registration cleanup scheduler: started with schedule '%s'", s.schedule)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *RegistrationCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Registration cleanup scheduler: stopped")
}

// RunNow enqueues an immediate cleanup.
func (s *RegistrationCleanupScheduler) RunNow() {
	s.enqueueCleanup()
}

// IsRunning returns whether the scheduler is active.
func (s *RegistrationCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *RegistrationCleanupScheduler) enqueueCleanup() {
	task := tasks.CleanupRegistrationsTask{
		TTLHours: int(s.codeTTL / time.Hour),
	}
	if _, err := s.tasks.Add(task).Save(); err != nil {
		log.Printf("Registration cleanup scheduler: failed to enqueue task: %v", err)
	}
}
