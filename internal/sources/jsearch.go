package sources

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/clients/jsearch"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/scoring"
	"github.com/samber/lo"
	"math"
	"strings"
	"time"
)

const JSearchName = "jsearch"

type jsearchClient interface {
	HasCredentials() bool
	Search(ctx context.Context, parameters jsearch.SearchParameters) ([]jsearch.Job, error)
}

type JSearch struct {
	client jsearchClient
}

func NewJSearch(client jsearchClient) *JSearch {
	return &JSearch{client: client}
}

func (j *JSearch) Name() string { return JSearchName }

func (j *JSearch) IsEnabled() bool { return j.client.HasCredentials() }

func (j *JSearch) Search(ctx context.Context, query Query) ([]models.JobListing, error) {
	text := query.Text
	if query.Location != "" {
		text += " in " + query.Location
	}

	jobs, err := j.client.Search(ctx, jsearch.SearchParameters{Query: text, Page: max(query.Page, 1), NumPages: 1})
	if err != nil {
		return nil, err
	}

	return lo.Map(jobs, func(job jsearch.Job, _ int) models.JobListing {
		return toJSearchListing(job)
	}), nil
}

func toJSearchListing(job jsearch.Job) models.JobListing {
	description := plainText(job.Description)
	skills := lo.Compact(job.RequiredSkills)

	listing := models.JobListing{
		ID:                qualifiedID(JSearchName, job.ID),
		Title:             job.Title,
		Company:           job.EmployerName,
		Location:          jsearchLocation(job),
		Description:       description,
		Requirements:      lo.Compact(job.Highlights.Qualifications),
		AIResistanceScore: scoring.Score(job.Title, description, skills),
		Category:          guessCategory(job.Title, description),
		Remote:            job.IsRemote,
		ExperienceLevel:   experienceFromTitle(job.Title),
		SourceURL:         job.ApplyLink,
		Source:            JSearchName,
		Tags:              skills,
		Benefits:          lo.Compact(job.Highlights.Benefits),
	}
	if listing.Requirements == nil {
		listing.Requirements = []string{}
	}
	if listing.Tags == nil {
		listing.Tags = []string{}
	}
	if months := job.RequiredExperience.Months; months != nil {
		listing.ExperienceLevel = experienceFromMonths(*months)
	} else if job.RequiredExperience.NoExperienceRequired {
		listing.ExperienceLevel = models.EntryLevel
	}
	if job.MinSalary != nil || job.MaxSalary != nil {
		listing.Salary = &models.SalaryRange{
			Min:      roundSalary(job.MinSalary),
			Max:      roundSalary(job.MaxSalary),
			Currency: job.SalaryCurrency,
			Period:   strings.ToLower(job.SalaryPeriod),
		}
	}
	if posted, err := time.Parse(time.RFC3339, job.PostedAtUTC); err == nil {
		listing.PostedDate = posted
	}
	if expires, err := time.Parse(time.RFC3339, job.ExpiresAtUTC); err == nil && !expires.Before(listing.PostedDate) {
		listing.ExpiryDate = &expires
	}
	return listing
}

func jsearchLocation(job jsearch.Job) string {
	parts := lo.Compact([]string{job.City, job.State, job.Country})
	if len(parts) == 0 && job.IsRemote {
		return "Remote"
	}
	return strings.Join(parts, ", ")
}

func roundSalary(value *float64) int {
	if value == nil {
		return 0
	}
	return int(math.Round(*value))
}
