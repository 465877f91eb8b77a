// Package scoring estimates how resistant a job is to automation.
//
// The estimate is a keyword heuristic over the lower-cased title, description and
// skills: it starts at 5, adds 1.5 per high-resistance phrase, subtracts 2 per
// low-resistance phrase and adds 1 per bonus occupation, then clamps to [1,10] and
// rounds. Each phrase counts at most once.
package scoring

import (
	"math"
	"strings"
)

const (
	baseScore = 5.0

	highResistanceWeight = 1.5
	lowResistanceWeight  = -2.0
	bonusCategoryWeight  = 1.0

	minScore = 1
	maxScore = 10
)

var highResistanceKeywords = []string{
	"patient care",
	"hands-on",
	"creative",
	"emergency",
	"nursing",
	"skilled trade",
	"physical",
	"empathy",
	"counseling",
	"therapy",
	"crisis",
	"leadership",
	"negotiation",
	"mentoring",
	"interpersonal",
	"installation",
	"repair",
	"craftsmanship",
	"surgery",
	"caregiving",
}

var lowResistanceKeywords = []string{
	"data entry",
	"administrative",
	"repetitive",
	"automated",
	"routine",
	"clerical",
	"bookkeeping",
	"transcription",
	"telemarketing",
	"basic customer service",
	"invoice processing",
	"proofreading",
}

var bonusCategoryKeywords = []string{
	"healthcare",
	"teacher",
	"electrician",
	"plumber",
	"therapist",
	"social work",
	"paramedic",
	"carpenter",
	"welder",
	"mechanic",
	"hvac",
	"counselor",
}

// Score returns an integer in [1,10]. Text without any known phrase scores 5.
func Score(title, description string, skills []string) int {
	text := strings.ToLower(title + " " + description + " " + strings.Join(skills, " "))

	score := baseScore
	score += highResistanceWeight * float64(countMatches(text, highResistanceKeywords))
	score += lowResistanceWeight * float64(countMatches(text, lowResistanceKeywords))
	score += bonusCategoryWeight * float64(countMatches(text, bonusCategoryKeywords))

	return clamp(score)
}

// Normalize forces a provider supplied score into [1,10].
func Normalize(score int) int {
	return clamp(float64(score))
}

func countMatches(text string, keywords []string) int {
	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			matches++
		}
	}
	return matches
}

func clamp(score float64) int {
	score = math.Max(minScore, math.Min(maxScore, score))
	return int(math.Round(score))
}
