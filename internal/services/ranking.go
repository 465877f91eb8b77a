package services

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"sort"
	"strings"
)

func dedupeKey(job models.JobListing) string {
	return strings.ToLower(strings.TrimSpace(job.Title)) + "_" + strings.ToLower(strings.TrimSpace(job.Company))
}

// DedupeAndRank collapses listings with the same normalized title and company, keeping the
// first seen unless a later one scores strictly higher, then orders them by score,
// minimum salary and posting date, all descending.
func DedupeAndRank(jobs []models.JobListing) []models.JobListing {
	positions := make(map[string]int, len(jobs))
	unique := make([]models.JobListing, 0, len(jobs))

	for _, job := range jobs {
		key := dedupeKey(job)
		if i, found := positions[key]; found {
			if job.AIResistanceScore > unique[i].AIResistanceScore {
				unique[i] = job
			}
			continue
		}
		positions[key] = len(unique)
		unique = append(unique, job)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		if a.AIResistanceScore != b.AIResistanceScore {
			return a.AIResistanceScore > b.AIResistanceScore
		}
		if a.SalaryMin() != b.SalaryMin() {
			return a.SalaryMin() > b.SalaryMin()
		}
		if !a.PostedDate.Equal(b.PostedDate) {
			return a.PostedDate.After(b.PostedDate)
		}
		return a.ID < b.ID
	})
	return unique
}
