package adzuna

type SearchResponse struct {
	Count   int   `json:"count"`
	Results []Job `json:"results"`
}

type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Company      Company  `json:"company"`
	Location     Location `json:"location"`
	Category     Category `json:"category"`
	SalaryMin    float64  `json:"salary_min"`
	SalaryMax    float64  `json:"salary_max"`
	RedirectURL  string   `json:"redirect_url"`
	Created      string   `json:"created"`
	ContractTime string   `json:"contract_time"`
	ContractType string   `json:"contract_type"`
}

type Company struct {
	DisplayName string `json:"display_name"`
}

type Location struct {
	DisplayName string   `json:"display_name"`
	Area        []string `json:"area"`
}

type Category struct {
	Label string `json:"label"`
	Tag   string `json:"tag"`
}
