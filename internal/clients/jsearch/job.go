package jsearch

type searchResponse struct {
	Status string `json:"status"`
	Data   []Job  `json:"data"`
}

type Job struct {
	ID                 string             `json:"job_id"`
	Title              string             `json:"job_title"`
	EmployerName       string             `json:"employer_name"`
	Description        string             `json:"job_description"`
	City               string             `json:"job_city"`
	State              string             `json:"job_state"`
	Country            string             `json:"job_country"`
	IsRemote           bool               `json:"job_is_remote"`
	EmploymentType     string             `json:"job_employment_type"`
	ApplyLink          string             `json:"job_apply_link"`
	PostedAtUTC        string             `json:"job_posted_at_datetime_utc"`
	ExpiresAtUTC       string             `json:"job_offer_expiration_datetime_utc"`
	MinSalary          *float64           `json:"job_min_salary"`
	MaxSalary          *float64           `json:"job_max_salary"`
	SalaryCurrency     string             `json:"job_salary_currency"`
	SalaryPeriod       string             `json:"job_salary_period"`
	RequiredSkills     []string           `json:"job_required_skills"`
	RequiredExperience RequiredExperience `json:"job_required_experience"`
	Highlights         Highlights         `json:"job_highlights"`
}

type RequiredExperience struct {
	NoExperienceRequired bool `json:"no_experience_required"`
	Months               *int `json:"required_experience_in_months"`
}

type Highlights struct {
	Qualifications   []string `json:"Qualifications"`
	Benefits         []string `json:"Benefits"`
	Responsibilities []string `json:"Responsibilities"`
}
