package services

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/logger"
	"github.com/maxaizer/irreplaceable/internal/metrics"
	"github.com/maxaizer/irreplaceable/internal/sources"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"time"
)

const aggregationPageSize = 20

// Aggregator fans queries out to every enabled job source and concatenates the results.
type Aggregator struct {
	sources        []sources.Source
	maxConcurrency int
	timeout        time.Duration
}

func NewAggregator(srcs []sources.Source, maxConcurrency int, timeout time.Duration) *Aggregator {
	return &Aggregator{
		sources:        srcs,
		maxConcurrency: max(maxConcurrency, 1),
		timeout:        timeout,
	}
}

func (a *Aggregator) GetEnabledSources() []string {
	names := make([]string, 0, len(a.sources))
	for _, source := range a.enabledSources() {
		names = append(names, source.Name())
	}
	return names
}

func (a *Aggregator) enabledSources() []sources.Source {
	enabled := make([]sources.Source, 0, len(a.sources))
	for _, source := range a.sources {
		if source.IsEnabled() {
			enabled = append(enabled, source)
		}
	}
	return enabled
}

// AggregateJobs never fails: a source that errors or times out contributes nothing.
// Results keep source order then query order, and a repeated listing ID is kept once.
func (a *Aggregator) AggregateJobs(ctx context.Context, queries []string, location string) []models.JobListing {
	enabled := a.enabledSources()
	if len(enabled) == 0 || len(queries) == 0 {
		return []models.JobListing{}
	}

	start := time.Now()
	results := make([][]models.JobListing, len(enabled)*len(queries))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.maxConcurrency)

	for i, source := range enabled {
		for j, query := range queries {
			slot := i*len(queries) + j
			group.Go(func() error {
				results[slot] = a.search(groupCtx, source, sources.Query{
					Text:     query,
					Location: location,
					Page:     1,
					PageSize: aggregationPageSize,
				})
				return nil
			})
		}
	}
	_ = group.Wait()

	seen := make(map[string]struct{})
	jobs := make([]models.JobListing, 0)
	for _, batch := range results {
		for _, job := range batch {
			if _, found := seen[job.ID]; found {
				continue
			}
			seen[job.ID] = struct{}{}
			jobs = append(jobs, job)
		}
	}

	metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	log.Debugf("aggregated %d jobs from %d sources and %d queries in %v",
		len(jobs), len(enabled), len(queries), time.Since(start))
	return jobs
}

func (a *Aggregator) search(ctx context.Context, source sources.Source, query sources.Query) []models.JobListing {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	jobs, err := source.Search(ctx, query)
	metrics.SourceRequestDuration.WithLabelValues(source.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		outcome := "error"
		if ctx.Err() != nil {
			outcome = "timeout"
		}
		metrics.SourceRequestsCounter.WithLabelValues(source.Name(), outcome).Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSourceApi).
			Errorf("source %s failed for query %q: %v", source.Name(), query.Text, err)
		return nil
	}

	valid := make([]models.JobListing, 0, len(jobs))
	for _, job := range jobs {
		if err := job.Validate(); err != nil {
			log.Warningf("source %s returned invalid listing: %v", source.Name(), err)
			continue
		}
		valid = append(valid, job)
	}

	metrics.SourceRequestsCounter.WithLabelValues(source.Name(), "success").Inc()
	metrics.FetchedJobsCounter.WithLabelValues(source.Name()).Add(float64(len(valid)))
	return valid
}
