package sources

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/clients/hh"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/scoring"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
)

const HHName = "hh"

// hh.ru keeps vacancies searchable for at most a month.
const hhSearchPeriodDays = 30

type hhClient interface {
	GetVacancies(ctx context.Context, parameters hh.SearchParameters) ([]hh.Vacancy, error)
}

type HH struct {
	client  hhClient
	enabled bool
	areaID  string
}

func NewHH(client hhClient, enabled bool, areaID string) *HH {
	return &HH{client: client, enabled: enabled, areaID: areaID}
}

func (h *HH) Name() string { return HHName }

func (h *HH) IsEnabled() bool { return h.enabled }

func (h *HH) Search(ctx context.Context, query Query) ([]models.JobListing, error) {
	params := hh.SearchParameters{
		Text:        strings.TrimSpace(query.Text + " " + query.Location),
		AreaID:      h.areaID,
		PeriodDays:  hhSearchPeriodDays,
		NewestFirst: true,
		Page:        max(query.Page-1, 0),
		PerPage:     min(max(query.PageSize, 1), 100),
	}

	vacancies, err := h.client.GetVacancies(ctx, params)
	if err != nil {
		if errors.Is(err, hh.ErrTooDeepPagination) {
			log.Warningf("too deep pagination for hh query %q, page: %d", query.Text, query.Page)
			return []models.JobListing{}, nil
		}
		return nil, err
	}

	listings := make([]models.JobListing, 0, len(vacancies))
	for _, vacancy := range vacancies {
		if vacancy.Archived {
			continue
		}
		listings = append(listings, toHHListing(vacancy))
	}
	return listings, nil
}

func toHHListing(vacancy hh.Vacancy) models.JobListing {
	requirement := plainText(vacancy.Snippet.Requirement)
	responsibility := plainText(vacancy.Snippet.Responsibility)
	description := strings.TrimSpace(responsibility + " " + requirement)

	listing := models.JobListing{
		ID:                qualifiedID(HHName, vacancy.ID),
		Title:             vacancy.Name,
		Company:           vacancy.Employer.Name,
		Location:          vacancy.Area.Name,
		Description:       description,
		Requirements:      []string{},
		AIResistanceScore: scoring.Score(vacancy.Name, description, nil),
		Category:          guessCategory(vacancy.Name, description),
		Remote:            vacancy.Schedule != nil && vacancy.Schedule.ID == string(hh.Remote),
		ExperienceLevel:   hhExperience(vacancy.Experience),
		PostedDate:        vacancy.PublishedAt.Time,
		SourceURL:         vacancy.Url,
		Source:            HHName,
		Tags:              []string{},
	}
	if requirement != "" {
		listing.Requirements = []string{requirement}
	}
	if s := vacancy.Salary; s != nil && (s.From != nil || s.To != nil) {
		listing.Salary = &models.SalaryRange{Currency: s.Currency, Period: "month"}
		if s.From != nil {
			listing.Salary.Min = *s.From
		}
		if s.To != nil {
			listing.Salary.Max = *s.To
		}
	}
	return listing
}

func hhExperience(experience *hh.Dictionary) models.ExperienceLevel {
	if experience == nil {
		return models.MidLevel
	}
	switch experience.ID {
	case "noExperience":
		return models.EntryLevel
	case "between1And3":
		return models.MidLevel
	default:
		return models.SeniorLevel
	}
}
