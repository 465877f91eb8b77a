package models

import (
	"strings"
	"time"
)

type CompanyReview struct {
	ID          int       `json:"id"`
	Company     string    `json:"company" validate:"required,max=200"`
	CompanyKey  string    `json:"-" gorm:"index"`
	Rating      int       `json:"rating" validate:"required,gte=1,lte=5"`
	Title       string    `json:"title" validate:"required,max=200"`
	Body        string    `json:"body" validate:"required,max=5000"`
	Pros        string    `json:"pros,omitempty" validate:"max=2000"`
	Cons        string    `json:"cons,omitempty" validate:"max=2000"`
	Role        string    `json:"role,omitempty" validate:"max=200"`
	AuthorEmail string    `json:"-" validate:"required,email"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CompanyRating struct {
	Company string  `json:"company"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

func NormalizeCompanyName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
