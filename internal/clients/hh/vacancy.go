package hh

import (
	"encoding/json"
	"fmt"
	"time"
)

type Vacancy struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Url         string      `json:"alternate_url"`
	PublishedAt CustomTime  `json:"published_at"`
	Employer    Employer    `json:"employer"`
	Area        Area        `json:"area"`
	Salary      *Salary     `json:"salary"`
	Schedule    *Dictionary `json:"schedule"`
	Experience  *Dictionary `json:"experience"`
	Snippet     Snippet     `json:"snippet"`
	Archived    bool        `json:"archived"`
}

type Employer struct {
	Name string `json:"name"`
}

type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

type Dictionary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Snippet struct {
	Requirement    string `json:"requirement"`
	Responsibility string `json:"responsibility"`
}

type CustomTime struct {
	time.Time
}

func (dt *CustomTime) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}

	t, err := time.Parse("2006-01-02T15:04:05-0700", str)
	if err != nil {
		return fmt.Errorf("parsing time %s: %v", str, err)
	}
	dt.Time = t
	return nil
}
