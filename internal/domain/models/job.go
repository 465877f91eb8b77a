package models

import (
	"fmt"
	"time"
)

const (
	MinAIResistanceScore = 1
	MaxAIResistanceScore = 10
)

type ExperienceLevel string

const (
	EntryLevel     ExperienceLevel = "entry"
	MidLevel       ExperienceLevel = "mid"
	SeniorLevel    ExperienceLevel = "senior"
	ExecutiveLevel ExperienceLevel = "executive"
)

func ToExperienceLevel(s string) (ExperienceLevel, error) {
	switch ExperienceLevel(s) {
	case EntryLevel, MidLevel, SeniorLevel, ExecutiveLevel:
		return ExperienceLevel(s), nil
	default:
		return "", fmt.Errorf("invalid experience level: %q", s)
	}
}

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
	Period   string `json:"period"`
}

// JobListing is a posting normalized from a job source or from seed data.
type JobListing struct {
	ID                string          `json:"id" gorm:"primaryKey"`
	Title             string          `json:"title"`
	Company           string          `json:"company"`
	Location          string          `json:"location"`
	Description       string          `json:"description"`
	Requirements      []string        `json:"requirements" gorm:"serializer:json"`
	Salary            *SalaryRange    `json:"salary,omitempty" gorm:"serializer:json"`
	AIResistanceScore int             `json:"aiResistanceScore"`
	Category          string          `json:"category" gorm:"index"`
	Remote            bool            `json:"remote"`
	ExperienceLevel   ExperienceLevel `json:"experienceLevel"`
	PostedDate        time.Time       `json:"postedDate"`
	ExpiryDate        *time.Time      `json:"expiryDate,omitempty"`
	SourceURL         string          `json:"sourceUrl"`
	Source            string          `json:"source" gorm:"index"`
	Tags              []string        `json:"tags" gorm:"serializer:json"`
	Benefits          []string        `json:"benefits,omitempty" gorm:"serializer:json"`
}

// SalaryMin is the raw lower bound in the listing's own currency and period; it is not normalized
// across sources.
func (j JobListing) SalaryMin() int {
	if j.Salary == nil {
		return 0
	}
	return j.Salary.Min
}

func (j JobListing) IsExpired(now time.Time) bool {
	return j.ExpiryDate != nil && j.ExpiryDate.Before(now)
}

func (j JobListing) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("job listing without id")
	}
	if j.AIResistanceScore < MinAIResistanceScore || j.AIResistanceScore > MaxAIResistanceScore {
		return fmt.Errorf("job listing %s: ai resistance score %d out of range", j.ID, j.AIResistanceScore)
	}
	if j.ExpiryDate != nil && !j.PostedDate.IsZero() && j.ExpiryDate.Before(j.PostedDate) {
		return fmt.Errorf("job listing %s: expires before it was posted", j.ID)
	}
	return nil
}
