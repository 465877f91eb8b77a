package sources

import (
	"context"
	"errors"
	"github.com/maxaizer/irreplaceable/internal/clients/adzuna"
	"github.com/maxaizer/irreplaceable/internal/clients/hh"
	"github.com/maxaizer/irreplaceable/internal/clients/jsearch"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type mockAdzunaClient struct {
	mock.Mock
}

func (m *mockAdzunaClient) HasCredentials() bool {
	return m.Called().Bool(0)
}

func (m *mockAdzunaClient) Search(ctx context.Context, parameters adzuna.SearchParameters) (*adzuna.SearchResponse, error) {
	args := m.Called(ctx, parameters)
	response, _ := args.Get(0).(*adzuna.SearchResponse)
	return response, args.Error(1)
}

type mockJSearchClient struct {
	mock.Mock
}

func (m *mockJSearchClient) HasCredentials() bool {
	return m.Called().Bool(0)
}

func (m *mockJSearchClient) Search(ctx context.Context, parameters jsearch.SearchParameters) ([]jsearch.Job, error) {
	args := m.Called(ctx, parameters)
	jobs, _ := args.Get(0).([]jsearch.Job)
	return jobs, args.Error(1)
}

type mockHHClient struct {
	mock.Mock
}

func (m *mockHHClient) GetVacancies(ctx context.Context, parameters hh.SearchParameters) ([]hh.Vacancy, error) {
	args := m.Called(ctx, parameters)
	vacancies, _ := args.Get(0).([]hh.Vacancy)
	return vacancies, args.Error(1)
}

func Test_PlainText_StripsMarkup(t *testing.T) {
	assert.Equal(t, "Install and repair wiring.", plainText("<p>Install <b>and</b>\n repair   wiring.</p>"))
	assert.Equal(t, "plain text", plainText("  plain   text "))
	assert.Equal(t, "", plainText(""))
}

func Test_ExperienceFromTitle(t *testing.T) {
	assert.Equal(t, models.SeniorLevel, experienceFromTitle("Senior Electrician"))
	assert.Equal(t, models.EntryLevel, experienceFromTitle("Apprentice Plumber"))
	assert.Equal(t, models.ExecutiveLevel, experienceFromTitle("Director of Nursing"))
	assert.Equal(t, models.MidLevel, experienceFromTitle("Electrician"))
}

func Test_Adzuna_Search_ShouldMapListings(t *testing.T) {
	client := &mockAdzunaClient{}
	client.On("Search", mock.Anything, adzuna.SearchParameters{What: "electrician", Where: "Austin", Page: 1, PerPage: 20}).
		Return(&adzuna.SearchResponse{Count: 1, Results: []adzuna.Job{{
			ID:           "4242",
			Title:        "<strong>Electrician</strong>",
			Description:  "<p>Hands-on installation and repair of wiring.</p>",
			Company:      adzuna.Company{DisplayName: "Spark Co"},
			Location:     adzuna.Location{DisplayName: "Austin, Texas"},
			Category:     adzuna.Category{Label: "Trade & Construction Jobs"},
			SalaryMin:    52000.4,
			SalaryMax:    68000,
			RedirectURL:  "https://adzuna.example/4242",
			Created:      "2026-10-01T10:00:00Z",
			ContractTime: "full_time",
		}}}, nil)

	source := NewAdzuna(client, "USD")
	listings, err := source.Search(context.Background(), Query{Text: "electrician", Location: "Austin", PageSize: 20})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	job := listings[0]
	assert.Equal(t, "adzuna:4242", job.ID)
	assert.Equal(t, "Electrician", job.Title)
	assert.Equal(t, "Hands-on installation and repair of wiring.", job.Description)
	assert.Equal(t, "Spark Co", job.Company)
	assert.Equal(t, "Trade & Construction", job.Category)
	assert.Equal(t, AdzunaName, job.Source)
	assert.Equal(t, []string{"full-time"}, job.Tags)
	require.NotNil(t, job.Salary)
	assert.Equal(t, 52000, job.Salary.Min)
	assert.Equal(t, "USD", job.Salary.Currency)
	assert.Equal(t, time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC), job.PostedDate)
	assert.NoError(t, job.Validate())
	assert.GreaterOrEqual(t, job.AIResistanceScore, 7)
}

func Test_Adzuna_IsEnabled_DependsOnCredentials(t *testing.T) {
	client := &mockAdzunaClient{}
	client.On("HasCredentials").Return(false)

	assert.False(t, NewAdzuna(client, "USD").IsEnabled())
}

func Test_Adzuna_Search_ShouldReturnClientError(t *testing.T) {
	client := &mockAdzunaClient{}
	client.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := NewAdzuna(client, "USD").Search(context.Background(), Query{Text: "nurse"})

	assert.Error(t, err)
}

func Test_JSearch_Search_ShouldMapListings(t *testing.T) {
	months := 72
	minSalary, maxSalary := 80000.0, 95000.0
	client := &mockJSearchClient{}
	client.On("Search", mock.Anything, jsearch.SearchParameters{Query: "registered nurse in Denver", Page: 1, NumPages: 1}).
		Return([]jsearch.Job{{
			ID:                 "abc==",
			Title:              "Registered Nurse",
			EmployerName:       "Mercy Health",
			Description:        "Patient care in a busy emergency department.",
			City:               "Denver",
			State:              "CO",
			Country:            "US",
			ApplyLink:          "https://jobs.example/abc",
			PostedAtUTC:        "2026-10-10T00:00:00Z",
			ExpiresAtUTC:       "2026-11-10T00:00:00Z",
			MinSalary:          &minSalary,
			MaxSalary:          &maxSalary,
			SalaryCurrency:     "USD",
			SalaryPeriod:       "YEAR",
			RequiredSkills:     []string{"CPR", ""},
			RequiredExperience: jsearch.RequiredExperience{Months: &months},
			Highlights: jsearch.Highlights{
				Qualifications: []string{"Active RN license"},
				Benefits:       []string{"Health insurance"},
			},
		}}, nil)

	listings, err := NewJSearch(client).Search(context.Background(), Query{Text: "registered nurse", Location: "Denver"})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	job := listings[0]
	assert.Equal(t, "jsearch:abc==", job.ID)
	assert.Equal(t, "Denver, CO, US", job.Location)
	assert.Equal(t, models.SeniorLevel, job.ExperienceLevel)
	assert.Equal(t, []string{"CPR"}, job.Tags)
	assert.Equal(t, []string{"Active RN license"}, job.Requirements)
	assert.Equal(t, []string{"Health insurance"}, job.Benefits)
	assert.Equal(t, "Healthcare", job.Category)
	assert.Equal(t, "year", job.Salary.Period)
	require.NotNil(t, job.ExpiryDate)
	assert.NoError(t, job.Validate())
}

func Test_HH_Search_ShouldSkipArchivedAndMapSalary(t *testing.T) {
	from := 90000
	client := &mockHHClient{}
	client.On("GetVacancies", mock.Anything, mock.MatchedBy(func(p hh.SearchParameters) bool {
		return p.Text == "электрик" && p.Page == 0 && p.AreaID == "1"
	})).Return([]hh.Vacancy{
		{
			ID:         "1",
			Name:       "Электрик",
			Employer:   hh.Employer{Name: "ООО Свет"},
			Area:       hh.Area{Name: "Москва"},
			Salary:     &hh.Salary{From: &from, Currency: "RUR"},
			Schedule:   &hh.Dictionary{ID: "remote"},
			Experience: &hh.Dictionary{ID: "noExperience"},
			Snippet:    hh.Snippet{Requirement: "Опыт <highlighttext>монтажа</highlighttext>"},
		},
		{ID: "2", Name: "Archived", Archived: true},
	}, nil)

	listings, err := NewHH(client, true, "1").Search(context.Background(), Query{Text: "электрик", Page: 1})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	job := listings[0]
	assert.Equal(t, "hh:1", job.ID)
	assert.True(t, job.Remote)
	assert.Equal(t, models.EntryLevel, job.ExperienceLevel)
	assert.Equal(t, []string{"Опыт монтажа"}, job.Requirements)
	require.NotNil(t, job.Salary)
	assert.Equal(t, 90000, job.Salary.Min)
	assert.Equal(t, 0, job.Salary.Max)
}

func Test_HH_Search_TooDeepPagination_ShouldReturnEmpty(t *testing.T) {
	client := &mockHHClient{}
	client.On("GetVacancies", mock.Anything, mock.Anything).Return(nil, hh.ErrTooDeepPagination)

	listings, err := NewHH(client, true, "").Search(context.Background(), Query{Text: "nurse", Page: 50})

	require.NoError(t, err)
	assert.Empty(t, listings)
}
