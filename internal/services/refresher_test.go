package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/irreplaceable/internal/config"
	"github.com/maxaizer/irreplaceable/internal/domain/events"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var refreshConfig = config.RefreshConfig{
	Schedule:       "0 */6 * * *",
	Queries:        []string{"nurse", "electrician"},
	ExpirationDays: 30,
}

func newTestRefresher(t *testing.T, bus EventBus.Bus, aggregator *fakeAggregator, feed *memoryFeed) *JobsRefresher {
	t.Helper()
	refresher, err := NewJobsRefresher(bus, aggregator, feed, &memoryData{}, refreshConfig)
	require.NoError(t, err)
	refresher.now = func() time.Time { return testNow }
	return refresher
}

func fromSource(job models.JobListing, source string) models.JobListing {
	job.Source = source
	return job
}

func Test_JobsRefresher_Refresh_ShouldStoreRankedFeedAndReportStats(t *testing.T) {
	stale := listing("adzuna:3", "Old Plumber", "Pipes", 9)
	stale.PostedDate = testNow.AddDate(0, 0, -45)
	aggregator := &fakeAggregator{jobs: []models.JobListing{
		fromSource(listing("adzuna:1", "Electrician", "Acme", 6), "adzuna"),
		fromSource(listing("jsearch:1", "electrician", "ACME", 8), "jsearch"),
		fromSource(listing("jsearch:2", "Data Entry Clerk", "Office", 2), "jsearch"),
		fromSource(stale, "adzuna"),
	}}
	feed := &memoryFeed{}
	bus := EventBus.New()

	var published *events.JobsRefreshed
	require.NoError(t, bus.Subscribe(events.JobsRefreshedTopic, func(event events.JobsRefreshed) {
		published = &event
	}))

	refresher := newTestRefresher(t, bus, aggregator, feed)
	stats, err := refresher.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalFetched)
	assert.Equal(t, 2, stats.Unique)
	assert.Equal(t, 1, stats.HighQuality)
	assert.Equal(t, map[string]int{"adzuna": 2, "jsearch": 2}, stats.BySource)

	stored, _ := feed.List(context.Background())
	require.Len(t, stored, 2)
	assert.Equal(t, "jsearch:1", stored[0].ID)

	require.NotNil(t, published)
	assert.Len(t, published.Jobs, 2)

	last, err := refresher.LastStats(context.Background())
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, stats.Unique, last.Unique)
	assert.Equal(t, stats.BySource, last.BySource)
}

func Test_JobsRefresher_NothingFetched_ShouldKeepPreviousFeed(t *testing.T) {
	feed := &memoryFeed{jobs: []models.JobListing{listing("old:1", "Nurse", "Mercy", 8)}}
	refresher := newTestRefresher(t, EventBus.New(), &fakeAggregator{}, feed)

	stats, err := refresher.Refresh(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.TotalFetched)
	stored, _ := feed.List(context.Background())
	assert.Len(t, stored, 1)
}

func Test_JobsRefresher_OverlappingRefresh_ShouldBeRejected(t *testing.T) {
	aggregator := &fakeAggregator{
		jobs:    []models.JobListing{listing("a:1", "Nurse", "Mercy", 8)},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	refresher := newTestRefresher(t, EventBus.New(), aggregator, &memoryFeed{})

	done := make(chan error)
	go func() {
		_, err := refresher.Refresh(context.Background())
		done <- err
	}()
	<-aggregator.entered

	_, err := refresher.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrRefreshInProgress)

	close(aggregator.release)
	assert.NoError(t, <-done)
}

func Test_JobsRefresher_LastStats_NoRefreshYet(t *testing.T) {
	refresher := newTestRefresher(t, EventBus.New(), &fakeAggregator{}, &memoryFeed{})

	stats, err := refresher.LastStats(context.Background())

	require.NoError(t, err)
	assert.Nil(t, stats)
}

func Test_NewJobsRefresher_InvalidSchedule_ShouldFail(t *testing.T) {
	cfg := refreshConfig
	cfg.Schedule = "every now and then"

	_, err := NewJobsRefresher(EventBus.New(), &fakeAggregator{}, &memoryFeed{}, &memoryData{}, cfg)

	assert.Error(t, err)
}
