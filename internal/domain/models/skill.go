package models

import "time"

type SkillLevel string

const (
	Beginner     SkillLevel = "beginner"
	Intermediate SkillLevel = "intermediate"
	Advanced     SkillLevel = "advanced"
	Expert       SkillLevel = "expert"
)

type Skill struct {
	Name            string     `json:"name" validate:"required,max=100"`
	Level           SkillLevel `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Category        string     `json:"category,omitempty" validate:"max=100"`
	YearsExperience *int       `json:"yearsExperience,omitempty" validate:"omitempty,gte=0,lte=60"`
}

type Preferences struct {
	Location   string   `json:"location,omitempty"`
	Remote     bool     `json:"remote"`
	MinSalary  int      `json:"minSalary,omitempty" validate:"gte=0"`
	Categories []string `json:"categories,omitempty"`
}

// SkillProfile is keyed by the owner's email.
type SkillProfile struct {
	Email       string      `json:"email" gorm:"primaryKey" validate:"required,email"`
	Skills      []Skill     `json:"skills" gorm:"serializer:json" validate:"required,min=1,max=100,dive"`
	Preferences Preferences `json:"preferences" gorm:"serializer:json"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (p SkillProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, skill := range p.Skills {
		names = append(names, skill.Name)
	}
	return names
}

type SkillMatch struct {
	JobID           string     `json:"jobId"`
	Job             JobListing `json:"job"`
	MatchScore      int        `json:"matchScore"`
	MatchedSkills   []string   `json:"matchedSkills"`
	MissingSkills   []string   `json:"missingSkills"`
	Recommendations []string   `json:"recommendations"`
}
