package services

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"math"
	"strings"
)

const (
	requirementsConsidered = 3
	maxRecommendations     = 3
)

var skillAdvice = map[string]string{
	"patient care":         "Volunteer at a local hospital or care home to build hands-on patient care experience",
	"cpr":                  "Get CPR and First Aid certified through the Red Cross or American Heart Association",
	"iv therapy":           "Complete an IV therapy certification course offered by community colleges",
	"critical care":        "Pursue a critical care (CCRN) certification after gaining ICU experience",
	"electrical wiring":    "Enroll in an electrical apprenticeship program to learn residential and commercial wiring",
	"blueprint reading":    "Take a blueprint reading course at a trade school",
	"plumbing":             "Look for a plumbing apprenticeship through a local union or trade association",
	"hvac":                 "Earn an EPA Section 608 certification and complete an HVAC training program",
	"welding":              "Get AWS welding certification through a vocational school",
	"classroom management": "Shadow experienced teachers or work as a substitute to practice classroom management",
	"curriculum design":    "Take a curriculum and instruction course or certificate program",
	"counseling":           "Pursue a counseling certificate and supervised practice hours",
	"case management":      "Volunteer with a social services agency to gain case management experience",
	"physical therapy":     "Work as a physical therapy aide to gain exposure before a DPT program",
	"leadership":           "Lead a volunteer project or take a leadership course",
	"communication":        "Join Toastmasters or take a communication skills workshop",
}

// Match compares a profile against one listing. Required skills are the listing's tags plus its
// first few requirements; a required skill matches when it contains a user skill or a user skill
// contains it, ignoring case.
func Match(profile models.SkillProfile, job models.JobListing) models.SkillMatch {
	required := requiredSkills(job)
	userSkills := make([]string, 0, len(profile.Skills))
	for _, name := range profile.SkillNames() {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			userSkills = append(userSkills, name)
		}
	}

	match := models.SkillMatch{
		JobID:           job.ID,
		Job:             job,
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
		Recommendations: []string{},
	}

	for _, skill := range required {
		if matchesAny(strings.ToLower(skill), userSkills) {
			match.MatchedSkills = append(match.MatchedSkills, skill)
		} else {
			match.MissingSkills = append(match.MissingSkills, skill)
		}
	}

	if len(required) > 0 {
		match.MatchScore = int(math.Round(float64(len(match.MatchedSkills)) * 100 / float64(len(required))))
	}

	for _, skill := range match.MissingSkills {
		if len(match.Recommendations) == maxRecommendations {
			break
		}
		match.Recommendations = append(match.Recommendations, recommendationFor(skill))
	}
	return match
}

func requiredSkills(job models.JobListing) []string {
	candidates := append([]string{}, job.Tags...)
	candidates = append(candidates, job.Requirements[:min(len(job.Requirements), requirementsConsidered)]...)

	seen := make(map[string]struct{}, len(candidates))
	required := make([]string, 0, len(candidates))
	for _, skill := range candidates {
		skill = strings.TrimSpace(skill)
		key := strings.ToLower(skill)
		if skill == "" {
			continue
		}
		if _, found := seen[key]; found {
			continue
		}
		seen[key] = struct{}{}
		required = append(required, skill)
	}
	return required
}

func matchesAny(required string, userSkills []string) bool {
	for _, userSkill := range userSkills {
		if strings.Contains(required, userSkill) || strings.Contains(userSkill, required) {
			return true
		}
	}
	return false
}

func recommendationFor(skill string) string {
	if advice, found := skillAdvice[strings.ToLower(skill)]; found {
		return advice
	}
	return "Consider taking courses in " + skill
}
