package services

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/logger"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"time"
)

type FeedCleanupRepository interface {
	RemoveExpired(ctx context.Context, now time.Time, postedBefore time.Time) (int64, error)
}

// FeedCleaner drops expired and stale listings from the feed once a day.
type FeedCleaner struct {
	jobs                 FeedCleanupRepository
	cron                 *cron.Cron
	expirationTimeInDays int
}

func NewFeedCleaner(jobs FeedCleanupRepository, expirationInDays int) (*FeedCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	fc := &FeedCleaner{
		jobs:                 jobs,
		cron:                 cron.New(),
		expirationTimeInDays: expirationInDays,
	}

	_, err := fc.cron.AddFunc("0 0 * * *", func() { _, _ = fc.Clean(context.Background()) })
	if err != nil {
		return nil, err
	}

	return fc, nil
}

func (fc *FeedCleaner) Start() {
	fc.cron.Start()
	log.Infof("feed cleaner started, expiration in days: %d", fc.expirationTimeInDays)
}

func (fc *FeedCleaner) Stop() {
	<-fc.cron.Stop().Done()
}

func (fc *FeedCleaner) Clean(ctx context.Context) (int64, error) {
	now := time.Now()
	postedBefore := now.AddDate(0, 0, -fc.expirationTimeInDays)

	rowsAffected, err := fc.jobs.RemoveExpired(ctx, now, postedBefore)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to clean expired jobs: %v", err)
		return 0, err
	}
	log.Infof("expired jobs were cleaned at %v, affected rows: %v", now, rowsAffected)
	return rowsAffected, nil
}
