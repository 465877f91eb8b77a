package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"sync"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irreplaceable_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	SourceRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irreplaceable_source_requests_total",
			Help: "Total number of job source searches by outcome.",
		},
		[]string{"source", "outcome"},
	)
	SourceRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "irreplaceable_source_request_duration_seconds",
			Help:    "Duration of a single job source search in seconds.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)
	FetchedJobsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irreplaceable_source_jobs_fetched_total",
			Help: "Total number of job listings returned by job sources.",
		},
		[]string{"source"},
	)
	AggregationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "irreplaceable_aggregation_duration_seconds",
			Help:    "Duration of each jobs aggregation in seconds.",
			Buckets: []float64{0.5, 1, 5, 15, 60, 300},
		},
	)
	FeedJobsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "irreplaceable_feed_jobs",
			Help: "Number of job listings stored by the last feed refresh.",
		},
	)
	HTTPRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irreplaceable_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ErrorsCounter)
		prometheus.MustRegister(SourceRequestsCounter)
		prometheus.MustRegister(SourceRequestDuration)
		prometheus.MustRegister(FetchedJobsCounter)
		prometheus.MustRegister(AggregationDuration)
		prometheus.MustRegister(FeedJobsGauge)
		prometheus.MustRegister(HTTPRequestsCounter)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
