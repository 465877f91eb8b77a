package models

import "time"

type Subscriber struct {
	Email            string    `json:"email" gorm:"primaryKey" validate:"required,email"`
	Interests        []string  `json:"interests,omitempty" gorm:"serializer:json" validate:"max=20"`
	UnsubscribeToken string    `json:"-" gorm:"uniqueIndex"`
	SubscribedAt     time.Time `json:"subscribedAt"`
}

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name" validate:"required,max=200"`
	Email     string    `json:"email" validate:"required,email"`
	Subject   string    `json:"subject" validate:"required,max=300"`
	Message   string    `json:"message" validate:"required,min=10,max=5000"`
	CreatedAt time.Time `json:"createdAt"`
}
