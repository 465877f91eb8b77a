package sources

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/clients/adzuna"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/scoring"
	"math"
	"strings"
	"time"
)

const AdzunaName = "adzuna"

type adzunaClient interface {
	HasCredentials() bool
	Search(ctx context.Context, parameters adzuna.SearchParameters) (*adzuna.SearchResponse, error)
}

type Adzuna struct {
	client   adzunaClient
	currency string
}

func NewAdzuna(client adzunaClient, currency string) *Adzuna {
	return &Adzuna{client: client, currency: currency}
}

func (a *Adzuna) Name() string { return AdzunaName }

func (a *Adzuna) IsEnabled() bool { return a.client.HasCredentials() }

func (a *Adzuna) Search(ctx context.Context, query Query) ([]models.JobListing, error) {
	response, err := a.client.Search(ctx, adzuna.SearchParameters{
		What:    query.Text,
		Where:   query.Location,
		Page:    max(query.Page, 1),
		PerPage: min(max(query.PageSize, 1), 50),
	})
	if err != nil {
		return nil, err
	}

	listings := make([]models.JobListing, 0, len(response.Results))
	for _, job := range response.Results {
		listings = append(listings, a.toListing(job))
	}
	return listings, nil
}

func (a *Adzuna) toListing(job adzuna.Job) models.JobListing {
	title := plainText(job.Title)
	description := plainText(job.Description)

	listing := models.JobListing{
		ID:                qualifiedID(AdzunaName, job.ID),
		Title:             title,
		Company:           job.Company.DisplayName,
		Location:          job.Location.DisplayName,
		Description:       description,
		Requirements:      []string{},
		AIResistanceScore: scoring.Score(title, description, nil),
		Category:          strings.TrimSuffix(job.Category.Label, " Jobs"),
		Remote:            looksRemote(title, description, job.Location.DisplayName),
		ExperienceLevel:   experienceFromTitle(title),
		SourceURL:         job.RedirectURL,
		Source:            AdzunaName,
		Tags:              adzunaTags(job),
	}
	if listing.Category == "" {
		listing.Category = guessCategory(title, description)
	}
	if job.SalaryMin > 0 || job.SalaryMax > 0 {
		listing.Salary = &models.SalaryRange{
			Min:      int(math.Round(job.SalaryMin)),
			Max:      int(math.Round(job.SalaryMax)),
			Currency: a.currency,
			Period:   "year",
		}
	}
	if posted, err := time.Parse(time.RFC3339, job.Created); err == nil {
		listing.PostedDate = posted
	}
	return listing
}

func adzunaTags(job adzuna.Job) []string {
	var tags []string
	if job.ContractTime != "" {
		tags = append(tags, strings.ReplaceAll(job.ContractTime, "_", "-"))
	}
	if job.ContractType != "" {
		tags = append(tags, job.ContractType)
	}
	if tags == nil {
		return []string{}
	}
	return tags
}
