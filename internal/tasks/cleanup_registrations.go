package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// RegistrationCleaner provides the ability to delete expired registration
// codes.
type RegistrationCleaner interface {
	DeleteExpired(retention time.Duration) (int64, error)
}

// CleanupRegistrationsTask removes verification codes older than the
// configured TTL.
type CleanupRegistrationsTask struct {
	TTLHours int `json:"ttl_hours"`
}

// Config returns the queue configuration for registration cleanup tasks.
func (t CleanupRegistrationsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_registrations",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupRegistrationsProcessor creates a processor function for
// CleanupRegistrationsTask.
func CleanupRegistrationsProcessor(cleaner RegistrationCleaner) backlite.QueueProcessor[CleanupRegistrationsTask] {
	return func(ctx context.Context, task CleanupRegistrationsTask) error {
		if cleaner == nil {
			return fmt.Errorf("registration cleaner not configured")
		}

		ttlHours := task.TTLHours
		if ttlHours <= 0 {
			ttlHours = 72
		}
		retention := time.Duration(ttlHours) * time.Hour

		deleted, err := cleaner.DeleteExpired(retention)
		if err != nil {
			return fmt.Errorf("cleanup registrations: %w", err)
		}

		log.Printf("[TASK] Cleaned up %d registration codes older than %d hours", deleted, ttlHours)
		return nil
	}
}

// NewCleanupRegistrationsQueue creates a backlite queue for registration
// cleanup tasks.
func NewCleanupRegistrationsQueue(cleaner RegistrationCleaner) backlite.Queue {
	return backlite.NewQueue(CleanupRegistrationsProcessor(cleaner))
}
