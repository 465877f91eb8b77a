package services

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/catalog"
	"github.com/maxaizer/irreplaceable/internal/config"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/logger"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"strings"
	"time"
)

type SearchFilter struct {
	Query      string
	Location   string
	Page       int
	PageSize   int
	Category   string
	Remote     *bool
	Experience models.ExperienceLevel
	MinSalary  int
	MinAIScore int
}

type JobPage struct {
	Jobs       []models.JobListing `json:"jobs"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
	HasMore    bool                `json:"hasMore"`
}

type jobFeedReader interface {
	List(ctx context.Context) ([]models.JobListing, error)
}

type jobAggregator interface {
	AggregateJobs(ctx context.Context, queries []string, location string) []models.JobListing
}

// JobSearchService merges the refreshed feed, live source results and seed jobs into ranked pages.
type JobSearchService struct {
	feed       jobFeedReader
	aggregator jobAggregator
	cache      *gocache.Cache
	config     config.SearchConfig
	now        func() time.Time
}

func NewJobSearchService(feed jobFeedReader, aggregator jobAggregator, cfg config.SearchConfig) *JobSearchService {
	return &JobSearchService{
		feed:       feed,
		aggregator: aggregator,
		cache:      gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		config:     cfg,
		now:        time.Now,
	}
}

func (s *JobSearchService) Search(ctx context.Context, filter SearchFilter) (JobPage, error) {
	if err := s.validate(&filter); err != nil {
		return JobPage{}, err
	}

	jobs := s.collect(ctx, filter.Query, filter.Location)
	jobs = s.applyFilter(jobs, filter)
	return paginate(jobs, filter.Page, filter.PageSize), nil
}

// Corpus is every current listing with no query applied, deduplicated and ranked.
func (s *JobSearchService) Corpus(ctx context.Context) []models.JobListing {
	return s.applyFilter(s.collect(ctx, "", ""), SearchFilter{})
}

func (s *JobSearchService) validate(filter *SearchFilter) error {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Location = strings.TrimSpace(filter.Location)

	if filter.Page < 0 {
		return newValidationError("page must be positive")
	}
	if filter.PageSize < 0 || filter.PageSize > s.config.MaxPageSize {
		return newValidationError("pageSize must be between 1 and %d", s.config.MaxPageSize)
	}
	if filter.MinSalary < 0 {
		return newValidationError("minSalary must not be negative")
	}
	if filter.MinAIScore < 0 || filter.MinAIScore > models.MaxAIResistanceScore {
		return newValidationError("minAiScore must be between 0 and %d", models.MaxAIResistanceScore)
	}
	if filter.Experience != "" {
		if _, err := models.ToExperienceLevel(string(filter.Experience)); err != nil {
			return newValidationError("%v", err)
		}
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = s.config.PageSize
	}
	return nil
}

func (s *JobSearchService) collect(ctx context.Context, query string, location string) []models.JobListing {
	var jobs []models.JobListing

	if query != "" {
		jobs = append(jobs, s.liveJobs(ctx, query, location)...)
	}

	feed, err := s.feed.List(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to load job feed: %v", err)
	}
	for _, job := range feed {
		if matchesQuery(job, query) {
			jobs = append(jobs, job)
		}
	}

	jobs = s.blendSeeds(jobs, query)
	return DedupeAndRank(jobs)
}

func (s *JobSearchService) liveJobs(ctx context.Context, query string, location string) []models.JobListing {
	key := strings.ToLower(query) + "|" + strings.ToLower(location)
	if cached, found := s.cache.Get(key); found {
		return cached.([]models.JobListing)
	}

	jobs := s.aggregator.AggregateJobs(ctx, []string{query}, location)
	// an empty result may come from a transient outage, so it is not cached
	if len(jobs) > 0 {
		s.cache.Set(key, jobs, gocache.DefaultExpiration)
	}
	return jobs
}

func (s *JobSearchService) blendSeeds(jobs []models.JobListing, query string) []models.JobListing {
	policy := s.config.SeedBlend
	if policy.Mode == config.SeedBlendNever {
		return jobs
	}

	seeds := catalog.SeedJobs(s.now())
	matching := make([]models.JobListing, 0, len(seeds))
	for _, seed := range seeds {
		if matchesQuery(seed, query) {
			matching = append(matching, seed)
		}
	}

	if len(jobs) == 0 {
		if len(matching) == 0 {
			return seeds
		}
		return matching
	}
	if policy.Mode == config.SeedBlendAlways {
		return append(jobs, matching[:min(len(matching), policy.Count)]...)
	}
	return jobs
}

func (s *JobSearchService) applyFilter(jobs []models.JobListing, filter SearchFilter) []models.JobListing {
	now := s.now()
	location := strings.ToLower(filter.Location)

	filtered := make([]models.JobListing, 0, len(jobs))
	for _, job := range jobs {
		switch {
		case job.IsExpired(now):
		case location != "" && !job.Remote && !strings.Contains(strings.ToLower(job.Location), location):
		case filter.Category != "" && !strings.EqualFold(job.Category, filter.Category):
		case filter.Remote != nil && job.Remote != *filter.Remote:
		case filter.Experience != "" && job.ExperienceLevel != filter.Experience:
		case filter.MinSalary > 0 && job.SalaryMin() < filter.MinSalary:
		case job.AIResistanceScore < filter.MinAIScore:
		default:
			filtered = append(filtered, job)
		}
	}
	return filtered
}

func matchesQuery(job models.JobListing, query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(job.Title+" "+job.Company+" "+job.Category+" "+job.Description), query) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func paginate(jobs []models.JobListing, page int, pageSize int) JobPage {
	total := len(jobs)
	totalPages := (total + pageSize - 1) / pageSize
	from := min((page-1)*pageSize, total)
	to := min(from+pageSize, total)

	return JobPage{
		Jobs:       jobs[from:to],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}
