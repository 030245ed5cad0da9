// Package entrypoint boots the data layer and its maintenance machinery.
package entrypoint

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/badcoders/filmbase/internal/config"
	"github.com/badcoders/filmbase/internal/database"
	"github.com/badcoders/filmbase/internal/scheduler"
	"github.com/badcoders/filmbase/internal/storage"
	"github.com/badcoders/filmbase/internal/tasks"
)

// Run opens the database, ensures the schema, starts the maintenance task
// queue and blocks until the process receives an interrupt.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting filmbase v%s", version)

	dbPath := storage.FilePath(cfg.Database.Name)
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var taskClient *tasks.Client
	var cleanupScheduler *scheduler.RegistrationCleanupScheduler

	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(dbPath, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer taskClient.Close()

		taskClient.Register(tasks.NewCleanupRegistrationsQueue(db.Registrations()))
		go taskClient.Start(ctx)

		cleanupScheduler = scheduler.NewRegistrationCleanupScheduler(
			taskClient,
			cfg.Registration.CleanupSchedule,
			cfg.Registration.CodeTTL,
		)
		if err := cleanupScheduler.Start(ctx); err != nil {
			log.Fatalf("Failed to start cleanup scheduler: %v", err)
		}
	} else {
		log.Printf("Task queue disabled; expired registration codes will not be reaped")
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Printf("Shutting down, waiting up to %v for tasks to finish", timeout)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if cleanupScheduler != nil {
		cleanupScheduler.Stop()
	}
	if taskClient != nil {
		taskClient.Stop(shutdownCtx)
	}

	log.Println("Exiting")
}
