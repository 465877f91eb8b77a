package services

import (
	"context"
	"encoding/json"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/irreplaceable/internal/config"
	"github.com/maxaizer/irreplaceable/internal/domain/events"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/logger"
	"github.com/maxaizer/irreplaceable/internal/metrics"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"sync/atomic"
	"time"
)

const (
	highQualityScore   = 7
	refreshStatsDataID = "jobs_refresh_stats"
)

type RefreshStats struct {
	TotalFetched int            `json:"totalFetched"`
	Unique       int            `json:"unique"`
	HighQuality  int            `json:"highQuality"`
	BySource     map[string]int `json:"bySource"`
	Duration     time.Duration  `json:"-"`
	DurationMs   int64          `json:"durationMs"`
	RefreshedAt  time.Time      `json:"refreshedAt"`
}

type feedWriter interface {
	ReplaceAll(ctx context.Context, jobs []models.JobListing) error
}

type dataRepository interface {
	Save(ctx context.Context, id string, data []byte) error
	Load(ctx context.Context, id string) ([]byte, error)
}

// JobsRefresher rebuilds the job feed from every enabled source on a schedule or on demand.
type JobsRefresher struct {
	bus            EventBus.Bus
	aggregator     jobAggregator
	jobs           feedWriter
	data           dataRepository
	cron           *cron.Cron
	queries        []string
	location       string
	runOnStart     bool
	expirationDays int
	running        atomic.Bool
	now            func() time.Time
}

func NewJobsRefresher(bus EventBus.Bus, aggregator jobAggregator, jobs feedWriter, data dataRepository,
	cfg config.RefreshConfig) (*JobsRefresher, error) {

	r := &JobsRefresher{
		bus:            bus,
		aggregator:     aggregator,
		jobs:           jobs,
		data:           data,
		cron:           cron.New(),
		queries:        cfg.Queries,
		location:       cfg.Location,
		runOnStart:     cfg.RunOnStart,
		expirationDays: cfg.ExpirationDays,
		now:            time.Now,
	}

	_, err := r.cron.AddFunc(cfg.Schedule, r.refreshOnSchedule)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobsRefresher) Start() {
	r.cron.Start()
	log.Infof("jobs refresher started, %d queries", len(r.queries))
	if r.runOnStart {
		go r.refreshOnSchedule()
	}
}

func (r *JobsRefresher) Stop() {
	<-r.cron.Stop().Done()
}

func (r *JobsRefresher) refreshOnSchedule() {
	if _, err := r.Refresh(context.Background()); err != nil {
		log.Errorf("scheduled jobs refresh failed: %v", err)
	}
}

// Refresh fails with ErrRefreshInProgress when another refresh is still running.
func (r *JobsRefresher) Refresh(ctx context.Context) (RefreshStats, error) {
	if !r.running.CompareAndSwap(false, true) {
		return RefreshStats{}, ErrRefreshInProgress
	}
	defer r.running.Store(false)

	start := r.now()
	log.Infof("running jobs refresh at %v", start)

	fetched := r.aggregator.AggregateJobs(ctx, r.queries, r.location)

	stats := RefreshStats{TotalFetched: len(fetched), BySource: map[string]int{}}
	for _, job := range fetched {
		stats.BySource[job.Source]++
	}

	staleBefore := start.AddDate(0, 0, -r.expirationDays)
	fresh := make([]models.JobListing, 0, len(fetched))
	for _, job := range fetched {
		if job.IsExpired(start) || (!job.PostedDate.IsZero() && job.PostedDate.Before(staleBefore)) {
			continue
		}
		fresh = append(fresh, job)
	}

	ranked := DedupeAndRank(fresh)
	stats.Unique = len(ranked)
	for _, job := range ranked {
		if job.AIResistanceScore >= highQualityScore {
			stats.HighQuality++
		}
	}

	if len(ranked) > 0 {
		if err := r.jobs.ReplaceAll(ctx, ranked); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to store refreshed jobs: %v", err)
			return RefreshStats{}, err
		}
		metrics.FeedJobsGauge.Set(float64(len(ranked)))
	} else {
		log.Warning("jobs refresh fetched nothing, keeping the previous feed")
	}

	stats.RefreshedAt = r.now()
	stats.Duration = stats.RefreshedAt.Sub(start)
	stats.DurationMs = stats.Duration.Milliseconds()
	r.saveStats(ctx, stats)

	if len(ranked) > 0 {
		r.bus.Publish(events.JobsRefreshedTopic, events.JobsRefreshed{Jobs: ranked, RefreshedAt: stats.RefreshedAt})
	}

	log.Infof("jobs refresh ended after %v: fetched %d, unique %d, high quality %d",
		stats.Duration, stats.TotalFetched, stats.Unique, stats.HighQuality)
	return stats, nil
}

// LastStats returns nil when no refresh has completed yet.
func (r *JobsRefresher) LastStats(ctx context.Context) (*RefreshStats, error) {
	data, err := r.data.Load(ctx, refreshStatsDataID)
	if err != nil || data == nil {
		return nil, err
	}

	var stats RefreshStats
	if err = json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	stats.Duration = time.Duration(stats.DurationMs) * time.Millisecond
	return &stats, nil
}

func (r *JobsRefresher) saveStats(ctx context.Context, stats RefreshStats) {
	data, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal refresh stats: %v", err)
		return
	}
	if err = r.data.Save(ctx, refreshStatsDataID, data); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save refresh stats: %v", err)
	}
}
