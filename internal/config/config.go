package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Registration
		Tasks
		Global
	}

	Database struct {
		Name string // base name; the ".sdb" extension is appended on open
	}
	Registration struct {
		CodeTTL         time.Duration // how long verification codes stay valid
		CleanupSchedule string        // Cron format: "0 * * * *" = hourly
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_name", DefaultDatabaseName)
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Registration code defaults
	v.SetDefault("registration_code_ttl", "72h")
	v.SetDefault("registration_cleanup_schedule", "0 * * * *") // Hourly at :00

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		Database: Database{
			Name: v.GetString("DATABASE_NAME"),
		},
		Registration: Registration{
			CodeTTL:         v.GetDuration("REGISTRATION_CODE_TTL"),
			CleanupSchedule: v.GetString("REGISTRATION_CLEANUP_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
