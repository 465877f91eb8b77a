package hh

import (
	"fmt"
	"github.com/pkg/errors"
	"net/url"
	"strconv"
)

// hh.ru serves at most this many results for one query, whatever the page size.
const maxSearchDepth = 2000

var ErrTooDeepPagination = errors.New("too deep pagination")

type Schedule string

const (
	FullDay  Schedule = "fullDay"
	Flexible Schedule = "flexible"
	Remote   Schedule = "remote"
)

type SearchParameters struct {
	Text        string
	AreaID      string
	Schedules   []Schedule
	PeriodDays  int
	NewestFirst bool
	Page        int
	PerPage     int
}

func (s SearchParameters) Validate() error {
	switch {
	case s.Page < 0:
		return fmt.Errorf("page must be non-negative")
	case s.PerPage <= 0 || s.PerPage > 100:
		return fmt.Errorf("per page must be between 1 and 100")
	case s.PeriodDays < 0 || s.PeriodDays > 30:
		return fmt.Errorf("period must be between 0 and 30 days")
	case (s.Page+1)*s.PerPage > maxSearchDepth:
		return ErrTooDeepPagination
	}
	return nil
}

func (s SearchParameters) ToUrlParams() url.Values {

	params := url.Values{
		"text":     {s.Text},
		"page":     {strconv.Itoa(s.Page)},
		"per_page": {strconv.Itoa(s.PerPage)},
	}
	for _, schedule := range s.Schedules {
		params.Add("schedule", string(schedule))
	}
	if s.AreaID != "" {
		params.Set("area", s.AreaID)
	}
	if s.PeriodDays > 0 {
		params.Set("period", strconv.Itoa(s.PeriodDays))
	}
	if s.NewestFirst {
		params.Set("order_by", "publication_time")
	}
	return params
}
