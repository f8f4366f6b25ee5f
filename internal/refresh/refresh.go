// Package refresh implements the offline global-catalog refresh job.
// It runs in its own process; the serving bot only ever reads the
// catalog file and picks up a refresh on restart.
package refresh

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"emotebot/internal/emote"
)

// Fetcher retrieves the current global emote set from its provider.
type Fetcher interface {
	FetchGlobal(ctx context.Context) ([]emote.Emote, error)
}

// Job fetches the global catalog and replaces the cache file.
type Job struct {
	fetcher Fetcher
	path    string
	logger  *log.Logger
}

// NewJob builds a refresh job writing to path.
func NewJob(fetcher Fetcher, path string, logger *log.Logger) *Job {
	if logger == nil {
		logger = log.Default()
	}
	return &Job{fetcher: fetcher, path: path, logger: logger}
}

// Run performs one refresh. On fetch failure the existing file is left
// untouched.
func (j *Job) Run(ctx context.Context) error {
	emotes, err := j.fetcher.FetchGlobal(ctx)
	if err != nil {
		return fmt.Errorf("fetch global emotes: %w", err)
	}
	if err := emote.WriteCatalog(j.path, emotes); err != nil {
		return err
	}
	j.logger.Info("catalog refreshed", "path", j.path, "emotes", len(emotes))
	return nil
}

// RunScheduled runs the job on the given cron schedule until ctx is
// cancelled. A tick is skipped when the previous run is still going.
func (j *Job) RunScheduled(ctx context.Context, schedule string) error {
	var running sync.Mutex

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if !running.TryLock() {
			j.logger.Warn("previous refresh still running, skipping tick")
			return
		}
		defer running.Unlock()

		if err := j.Run(ctx); err != nil {
			j.logger.Error("refresh failed", "err", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
