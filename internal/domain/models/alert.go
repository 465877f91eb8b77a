package models

import "time"

type AlertFrequency string

const (
	Daily  AlertFrequency = "daily"
	Weekly AlertFrequency = "weekly"
)

type JobAlert struct {
	ID             int            `json:"id"`
	Email          string         `json:"email" gorm:"index" validate:"required,email"`
	Query          string         `json:"query" validate:"max=200"`
	Location       string         `json:"location,omitempty" validate:"max=200"`
	Category       string         `json:"category,omitempty"`
	Remote         *bool          `json:"remote,omitempty"`
	MinSalary      int            `json:"minSalary,omitempty" validate:"gte=0"`
	MinAIScore     int            `json:"minAiScore,omitempty" validate:"gte=0,lte=10"`
	Frequency      AlertFrequency `json:"frequency" validate:"required,oneof=daily weekly"`
	Active         bool           `json:"active"`
	TelegramChatID int64          `json:"telegramChatId,omitempty"`
	LastNotifiedAt *time.Time     `json:"lastNotifiedAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// IsDue reports whether the alert may be notified again at now.
func (a JobAlert) IsDue(now time.Time) bool {
	if !a.Active {
		return false
	}
	if a.LastNotifiedAt == nil {
		return true
	}
	period := 24 * time.Hour
	if a.Frequency == Weekly {
		period = 7 * 24 * time.Hour
	}
	return !now.Before(a.LastNotifiedAt.Add(period))
}
