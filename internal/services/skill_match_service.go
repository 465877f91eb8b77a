package services

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/samber/lo"
	"sort"
	"strings"
	"time"
)

const (
	defaultMatchLimit = 10
	maxMatchLimit     = 100
	strongMatchScore  = 70
)

type MatchReport struct {
	Matches       []models.SkillMatch `json:"matches"`
	TotalJobs     int                 `json:"totalJobs"`
	Matched       int                 `json:"matched"`
	StrongMatches int                 `json:"strongMatches"`
}

type skillProfileRepository interface {
	Save(ctx context.Context, profile models.SkillProfile) error
	GetByEmail(ctx context.Context, email string) (*models.SkillProfile, error)
}

type jobCorpus interface {
	Corpus(ctx context.Context) []models.JobListing
}

type SkillMatchService struct {
	profiles skillProfileRepository
	jobs     jobCorpus
}

func NewSkillMatchService(profiles skillProfileRepository, jobs jobCorpus) *SkillMatchService {
	return &SkillMatchService{profiles: profiles, jobs: jobs}
}

func (s *SkillMatchService) SaveProfile(ctx context.Context, profile models.SkillProfile) (models.SkillProfile, error) {
	profile.Email = normalizeEmail(profile.Email)
	for i := range profile.Skills {
		profile.Skills[i].Name = strings.TrimSpace(profile.Skills[i].Name)
	}
	if err := validateStruct(profile); err != nil {
		return models.SkillProfile{}, err
	}

	profile.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Save(ctx, profile); err != nil {
		return models.SkillProfile{}, err
	}
	return profile, nil
}

func (s *SkillMatchService) GetProfile(ctx context.Context, email string) (*models.SkillProfile, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, newValidationError("email is required")
	}

	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (s *SkillMatchService) MatchProfile(ctx context.Context, email string, limit int) (MatchReport, error) {
	profile, err := s.GetProfile(ctx, email)
	if err != nil {
		return MatchReport{}, err
	}
	return s.MatchJobs(ctx, *profile, limit)
}

// MatchJobs ranks every listing in the corpus against the profile, best matches first.
func (s *SkillMatchService) MatchJobs(ctx context.Context, profile models.SkillProfile, limit int) (MatchReport, error) {
	if len(lo.Compact(profile.SkillNames())) == 0 {
		return MatchReport{}, newValidationError("at least one skill is required")
	}
	if limit < 0 || limit > maxMatchLimit {
		return MatchReport{}, newValidationError("limit must be between 1 and %d", maxMatchLimit)
	}
	if limit == 0 {
		limit = defaultMatchLimit
	}

	jobs := s.jobs.Corpus(ctx)
	report := MatchReport{TotalJobs: len(jobs), Matches: []models.SkillMatch{}}

	matches := make([]models.SkillMatch, 0, len(jobs))
	for _, job := range jobs {
		if !fitsPreferences(profile.Preferences, job) {
			continue
		}
		match := Match(profile, job)
		if match.MatchScore == 0 {
			continue
		}
		if match.MatchScore >= strongMatchScore {
			report.StrongMatches++
		}
		matches = append(matches, match)
	}
	report.Matched = len(matches)

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].Job.AIResistanceScore > matches[j].Job.AIResistanceScore
	})

	report.Matches = matches[:min(len(matches), limit)]
	return report, nil
}

// fitsPreferences narrows the corpus; zero-valued preferences accept every listing.
// Location matches by substring, and remote listings satisfy any location.
func fitsPreferences(prefs models.Preferences, job models.JobListing) bool {
	if prefs.Remote && !job.Remote {
		return false
	}
	if prefs.MinSalary > 0 && job.SalaryMin() < prefs.MinSalary {
		return false
	}
	if len(prefs.Categories) > 0 && !lo.ContainsBy(prefs.Categories, func(category string) bool {
		return strings.EqualFold(strings.TrimSpace(category), job.Category)
	}) {
		return false
	}
	location := strings.ToLower(strings.TrimSpace(prefs.Location))
	if location != "" && !job.Remote && !strings.Contains(strings.ToLower(job.Location), location) {
		return false
	}
	return true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
