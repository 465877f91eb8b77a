package catalog

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"time"
)

const SeedSource = "seed"

type seedJob struct {
	listing models.JobListing
	ageDays int
}

var seedJobs = []seedJob{
	{ageDays: 1, listing: models.JobListing{
		ID:                "seed:icu-nurse",
		Title:             "ICU Registered Nurse",
		Company:           "Mercy General Hospital",
		Location:          "Sacramento, CA",
		Description:       "Deliver critical patient care to ICU patients in a collaborative nursing team.",
		Requirements:      []string{"Active RN license", "BLS and ACLS certification", "2+ years acute care", "Strong communication"},
		Salary:            &models.SalaryRange{Min: 95000, Max: 130000, Currency: "USD", Period: "year"},
		AIResistanceScore: 9,
		Category:          "Healthcare",
		ExperienceLevel:   models.MidLevel,
		SourceURL:         "https://irreplaceable.jobs/seed/icu-nurse",
		Tags:              []string{"Patient Care", "IV Therapy", "Critical Care", "CPR"},
		Benefits:          []string{"Health insurance", "Tuition reimbursement"},
	}},
	{ageDays: 2, listing: models.JobListing{
		ID:                "seed:journeyman-electrician",
		Title:             "Journeyman Electrician",
		Company:           "BrightLine Electric",
		Location:          "Denver, CO",
		Description:       "Hands-on installation and repair of commercial electrical systems.",
		Requirements:      []string{"Journeyman license", "Blueprint reading", "OSHA 10", "Own hand tools"},
		Salary:            &models.SalaryRange{Min: 62000, Max: 88000, Currency: "USD", Period: "year"},
		AIResistanceScore: 9,
		Category:          "Skilled Trades",
		ExperienceLevel:   models.MidLevel,
		SourceURL:         "https://irreplaceable.jobs/seed/journeyman-electrician",
		Tags:              []string{"Electrical Systems", "Troubleshooting", "Safety Compliance"},
	}},
	{ageDays: 3, listing: models.JobListing{
		ID:                "seed:physical-therapist",
		Title:             "Outpatient Physical Therapist",
		Company:           "Motion Rehab",
		Location:          "Austin, TX",
		Description:       "Provide hands-on therapy and exercise programs for orthopedic patients.",
		Requirements:      []string{"DPT degree", "State PT license", "Manual therapy experience"},
		Salary:            &models.SalaryRange{Min: 85000, Max: 105000, Currency: "USD", Period: "year"},
		AIResistanceScore: 9,
		Category:          "Healthcare",
		ExperienceLevel:   models.MidLevel,
		SourceURL:         "https://irreplaceable.jobs/seed/physical-therapist",
		Tags:              []string{"Manual Therapy", "Patient Care", "Exercise Prescription"},
	}},
	{ageDays: 4, listing: models.JobListing{
		ID:                "seed:apprentice-plumber",
		Title:             "Apprentice Plumber",
		Company:           "FlowRight Plumbing",
		Location:          "Columbus, OH",
		Description:       "Learn a skilled trade alongside licensed plumbers on residential repair jobs.",
		Requirements:      []string{"High school diploma", "Valid driver's license", "Able to lift 50 lbs"},
		Salary:            &models.SalaryRange{Min: 38000, Max: 48000, Currency: "USD", Period: "year"},
		AIResistanceScore: 8,
		Category:          "Skilled Trades",
		ExperienceLevel:   models.EntryLevel,
		SourceURL:         "https://irreplaceable.jobs/seed/apprentice-plumber",
		Tags:              []string{"Pipe Fitting", "Customer Communication"},
	}},
	{ageDays: 5, listing: models.JobListing{
		ID:                "seed:school-counselor",
		Title:             "School Counselor",
		Company:           "Lakeside Unified School District",
		Location:          "Remote / Hybrid - Seattle, WA",
		Description:       "Counseling and crisis support for middle school students and families.",
		Requirements:      []string{"Master's in school counseling", "State certification", "Crisis intervention training"},
		Salary:            &models.SalaryRange{Min: 58000, Max: 78000, Currency: "USD", Period: "year"},
		AIResistanceScore: 9,
		Category:          "Education",
		Remote:            true,
		ExperienceLevel:   models.MidLevel,
		SourceURL:         "https://irreplaceable.jobs/seed/school-counselor",
		Tags:              []string{"Counseling", "Crisis Intervention", "Empathy"},
	}},
	{ageDays: 6, listing: models.JobListing{
		ID:                "seed:hvac-technician",
		Title:             "HVAC Service Technician",
		Company:           "Comfort Air Systems",
		Location:          "Phoenix, AZ",
		Description:       "Diagnose and repair residential HVAC units; physical work in the field.",
		Requirements:      []string{"EPA 608 certification", "2 years HVAC experience", "Clean driving record"},
		Salary:            &models.SalaryRange{Min: 50000, Max: 72000, Currency: "USD", Period: "year"},
		AIResistanceScore: 8,
		Category:          "Skilled Trades",
		ExperienceLevel:   models.MidLevel,
		SourceURL:         "https://irreplaceable.jobs/seed/hvac-technician",
		Tags:              []string{"HVAC Systems", "Refrigeration", "Troubleshooting"},
	}},
	{ageDays: 7, listing: models.JobListing{
		ID:                "seed:paramedic",
		Title:             "Paramedic",
		Company:           "County EMS",
		Location:          "Tampa, FL",
		Description:       "Respond to emergency calls and provide advanced pre-hospital patient care.",
		Requirements:      []string{"Paramedic certification", "ACLS", "PALS"},
		Salary:            &models.SalaryRange{Min: 48000, Max: 65000, Currency: "USD", Period: "year"},
		AIResistanceScore: 10,
		Category:          "Healthcare",
		ExperienceLevel:   models.EntryLevel,
		SourceURL:         "https://irreplaceable.jobs/seed/paramedic",
		Tags:              []string{"Emergency Response", "Patient Care", "CPR"},
	}},
	{ageDays: 8, listing: models.JobListing{
		ID:                "seed:nurse-manager",
		Title:             "Nurse Manager",
		Company:           "Harbor Health",
		Location:          "Boston, MA",
		Description:       "Lead a nursing unit, mentoring staff and owning patient care quality.",
		Requirements:      []string{"BSN", "5+ years nursing", "Leadership experience"},
		Salary:            &models.SalaryRange{Min: 120000, Max: 150000, Currency: "USD", Period: "year"},
		AIResistanceScore: 9,
		Category:          "Healthcare",
		ExperienceLevel:   models.SeniorLevel,
		SourceURL:         "https://irreplaceable.jobs/seed/nurse-manager",
		Tags:              []string{"Leadership", "Patient Care", "Mentoring"},
	}},
}

// SeedJobs returns the seed listings with posting dates relative to now.
func SeedJobs(now time.Time) []models.JobListing {
	jobs := make([]models.JobListing, 0, len(seedJobs))
	for _, seed := range seedJobs {
		job := seed.listing
		job.Source = SeedSource
		job.PostedDate = now.AddDate(0, 0, -seed.ageDays).Truncate(24 * time.Hour)
		job.Requirements = append([]string(nil), job.Requirements...)
		job.Tags = append([]string(nil), job.Tags...)
		job.Benefits = append([]string(nil), job.Benefits...)
		if job.Salary != nil {
			salary := *job.Salary
			job.Salary = &salary
		}
		jobs = append(jobs, job)
	}
	return jobs
}
