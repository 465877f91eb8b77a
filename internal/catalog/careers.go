// Package catalog holds the read-only reference data of the site: career paths and the
// hand-curated seed job listings used when live sources return nothing.
package catalog

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"slices"
)

var careers = []models.CareerPath{
	{
		ID:                "registered-nurse",
		Title:             "Registered Nurse",
		Description:       "Provides and coordinates patient care, educates patients and families and supports them emotionally.",
		Skills:            []string{"Patient Care", "Critical Thinking", "IV Therapy", "Communication", "CPR"},
		Industries:        []string{"Healthcare", "Hospitals", "Home Health"},
		AverageSalary:     models.SalaryRange{Min: 65000, Max: 95000, Currency: "USD", Period: "year"},
		AIResistanceScore: 9,
		GrowthOutlook:     models.Growing,
	},
	{
		ID:                "electrician",
		Title:             "Electrician",
		Description:       "Installs, maintains and repairs electrical wiring, equipment and fixtures on site.",
		Skills:            []string{"Electrical Systems", "Blueprint Reading", "Troubleshooting", "Safety Compliance"},
		Industries:        []string{"Construction", "Manufacturing", "Energy"},
		AverageSalary:     models.SalaryRange{Min: 50000, Max: 85000, Currency: "USD", Period: "year"},
		AIResistanceScore: 9,
		GrowthOutlook:     models.Growing,
	},
	{
		ID:                "plumber",
		Title:             "Plumber",
		Description:       "Installs and repairs piping systems, fixtures and water heaters in homes and businesses.",
		Skills:            []string{"Pipe Fitting", "Troubleshooting", "Blueprint Reading", "Customer Communication"},
		Industries:        []string{"Construction", "Facilities"},
		AverageSalary:     models.SalaryRange{Min: 48000, Max: 80000, Currency: "USD", Period: "year"},
		AIResistanceScore: 9,
		GrowthOutlook:     models.Stable,
	},
	{
		ID:                "physical-therapist",
		Title:             "Physical Therapist",
		Description:       "Helps injured or ill people improve movement and manage pain through hands-on therapy.",
		Skills:            []string{"Manual Therapy", "Patient Care", "Anatomy", "Exercise Prescription"},
		Industries:        []string{"Healthcare", "Sports", "Rehabilitation"},
		AverageSalary:     models.SalaryRange{Min: 80000, Max: 105000, Currency: "USD", Period: "year"},
		AIResistanceScore: 9,
		GrowthOutlook:     models.HighGrowth,
	},
	{
		ID:                "teacher",
		Title:             "Elementary School Teacher",
		Description:       "Plans lessons, mentors children and adapts instruction to each student's needs.",
		Skills:            []string{"Classroom Management", "Lesson Planning", "Mentoring", "Communication"},
		Industries:        []string{"Education"},
		AverageSalary:     models.SalaryRange{Min: 45000, Max: 70000, Currency: "USD", Period: "year"},
		AIResistanceScore: 8,
		GrowthOutlook:     models.Stable,
	},
	{
		ID:                "social-worker",
		Title:             "Clinical Social Worker",
		Description:       "Supports individuals and families through crisis, counseling and access to services.",
		Skills:            []string{"Counseling", "Case Management", "Crisis Intervention", "Empathy"},
		Industries:        []string{"Social Services", "Healthcare", "Government"},
		AverageSalary:     models.SalaryRange{Min: 50000, Max: 75000, Currency: "USD", Period: "year"},
		AIResistanceScore: 9,
		GrowthOutlook:     models.Growing,
	},
	{
		ID:                "hvac-technician",
		Title:             "HVAC Technician",
		Description:       "Installs and services heating, ventilation and cooling systems.",
		Skills:            []string{"HVAC Systems", "Troubleshooting", "Refrigeration", "Electrical Systems"},
		Industries:        []string{"Construction", "Facilities", "Energy"},
		AverageSalary:     models.SalaryRange{Min: 45000, Max: 75000, Currency: "USD", Period: "year"},
		AIResistanceScore: 8,
		GrowthOutlook:     models.Growing,
	},
	{
		ID:                "data-entry-clerk",
		Title:             "Data Entry Clerk",
		Description:       "Enters and updates records in databases; routine administrative work.",
		Skills:            []string{"Typing", "Attention to Detail", "Spreadsheets"},
		Industries:        []string{"Administration", "Finance"},
		AverageSalary:     models.SalaryRange{Min: 30000, Max: 40000, Currency: "USD", Period: "year"},
		AIResistanceScore: 2,
		GrowthOutlook:     models.Declining,
	},
}

// Careers returns a copy of the career catalog.
func Careers() []models.CareerPath {
	return slices.Clone(careers)
}

func CareerByID(id string) (models.CareerPath, bool) {
	for _, career := range careers {
		if career.ID == id {
			return career, true
		}
	}
	return models.CareerPath{}, false
}
