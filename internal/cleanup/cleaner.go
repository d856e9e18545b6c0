package cleanup

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// JobPurger is the slice of the job store that retention cleanup needs.
type JobPurger interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Cleaner deletes postings older than the retention threshold on a daily
// schedule. A failed run is logged and swallowed; the next tick retries.
type Cleaner struct {
	jobs          JobPurger
	cron          *cron.Cron
	logger        *zap.Logger
	retentionDays int
}

func NewCleaner(jobs JobPurger, logger *zap.Logger, retentionDays int, schedule, timezone string) (*Cleaner, error) {
	if retentionDays <= 0 {
		return nil, errors.New("retention days must be greater than zero")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	c := &Cleaner{
		jobs:          jobs,
		cron:          cron.New(cron.WithLocation(loc)),
		logger:        logger,
		retentionDays: retentionDays,
	}
	if _, err := c.cron.AddFunc(schedule, c.RunOnce); err != nil {
		return nil, err
	}

	c.cron.Start()
	logger.Sugar().Infof("job cleanup scheduled (%q, tz=%s, retention=%dd)", schedule, timezone, retentionDays)
	return c, nil
}

// Stop cancels future runs. An in-flight run finishes on its own.
func (c *Cleaner) Stop() {
	c.cron.Stop()
}

// RunOnce performs a single cleanup pass. Postings with postedDate strictly
// before now minus the retention threshold are removed.
func (c *Cleaner) RunOnce() {
	cutoff := time.Now().AddDate(0, 0, -c.retentionDays)
	deleted, err := c.jobs.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		c.logger.Sugar().Errorw("job cleanup failed", "err", err)
		return
	}
	c.logger.Sugar().Infow("job cleanup finished", "deleted", deleted, "cutoff", cutoff)
}
