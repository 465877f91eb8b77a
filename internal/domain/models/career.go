package models

type GrowthOutlook string

const (
	Declining  GrowthOutlook = "declining"
	Stable     GrowthOutlook = "stable"
	Growing    GrowthOutlook = "growing"
	HighGrowth GrowthOutlook = "high-growth"
)

type CareerPath struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Skills            []string      `json:"skills"`
	Industries        []string      `json:"industries"`
	AverageSalary     SalaryRange   `json:"averageSalary"`
	AIResistanceScore int           `json:"aiResistanceScore"`
	GrowthOutlook     GrowthOutlook `json:"growthOutlook"`
}
