package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"masalog-backend/config"
	"masalog-backend/internal/service"
)

// NewScheduler runs the export housekeeping job: a crash between writing a
// temp file and renaming it leaves a .tmp orphan behind, and this sweep
// removes the stale ones.
func NewScheduler(lc fx.Lifecycle, cfg *config.Config) *cron.Cron {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
	c := cron.New(cron.WithParser(parser))

	schedule := cfg.Export.CleanupSchedule
	directory := cfg.Export.Directory
	maxAge := cfg.Export.TempMaxAge

	_, err := c.AddFunc(schedule, func() {
		CleanupStaleExports(directory, maxAge)
	})
	if err != nil {
		log.Fatal().Err(err).Str("schedule", schedule).Msg("Failed to add cron job")
		return nil
	}
	log.Info().Str("schedule", schedule).Str("directory", directory).Msg("Scheduled export cleanup job")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})

	return c
}

// CleanupStaleExports removes .tmp files older than maxAge from the export
// directory. A missing directory is not an error; nothing has been exported
// yet.
func CleanupStaleExports(directory string, maxAge time.Duration) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Str("directory", directory).Msg("Failed to read export directory")
		}
		return
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), service.TempSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(directory, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Error().Err(err).Str("file", path).Msg("Failed to remove stale export temp file")
			continue
		}
		removed++
	}
	if removed > 0 {
		log.Info().Int("removed", removed).Str("directory", directory).Msg("Removed stale export temp files")
	}
}
