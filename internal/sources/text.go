package sources

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// plainText strips markup from provider descriptions and collapses whitespace.
func plainText(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return collapse(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapse(html)
	}
	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

var remoteMarkers = []string{"remote", "work from home", "telecommute", "удален"}

func looksRemote(texts ...string) bool {
	text := strings.ToLower(strings.Join(texts, " "))
	for _, marker := range remoteMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// experienceFromTitle guesses the level from common title words, defaulting to mid.
func experienceFromTitle(title string) models.ExperienceLevel {
	title = strings.ToLower(title)
	switch {
	case containsAny(title, "chief", "director", "vp ", "vice president", "head of"):
		return models.ExecutiveLevel
	case containsAny(title, "senior", "sr.", "lead", "principal", "manager", "master"):
		return models.SeniorLevel
	case containsAny(title, "junior", "jr.", "entry", "apprentice", "trainee", "intern", "assistant"):
		return models.EntryLevel
	default:
		return models.MidLevel
	}
}

func experienceFromMonths(months int) models.ExperienceLevel {
	switch {
	case months < 12:
		return models.EntryLevel
	case months < 60:
		return models.MidLevel
	default:
		return models.SeniorLevel
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Healthcare", []string{"nurse", "nursing", "health", "medical", "patient", "therap", "paramedic", "clinic", "hospital", "медицин"}},
	{"Skilled Trades", []string{"electric", "plumb", "hvac", "weld", "carpent", "mechanic", "technician", "электр"}},
	{"Education", []string{"teacher", "teaching", "school", "tutor", "educat", "counselor"}},
	{"Social Services", []string{"social work", "case manager", "community"}},
	{"Creative", []string{"design", "artist", "creative", "writer"}},
}

func guessCategory(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, entry := range categoryKeywords {
		if containsAny(text, entry.keywords...) {
			return entry.category
		}
	}
	return "Other"
}
