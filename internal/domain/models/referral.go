package models

import (
	"fmt"
	"time"
)

type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralContacted ReferralStatus = "contacted"
	ReferralHired     ReferralStatus = "hired"
	ReferralRejected  ReferralStatus = "rejected"
)

func ToReferralStatus(s string) (ReferralStatus, error) {
	switch ReferralStatus(s) {
	case ReferralPending, ReferralContacted, ReferralHired, ReferralRejected:
		return ReferralStatus(s), nil
	default:
		return "", fmt.Errorf("invalid referral status: %q", s)
	}
}

type Referral struct {
	ID             int            `json:"id"`
	Code           string         `json:"code" gorm:"uniqueIndex"`
	ReferrerEmail  string         `json:"referrerEmail" gorm:"index" validate:"required,email"`
	CandidateEmail string         `json:"candidateEmail" validate:"required,email,nefield=ReferrerEmail"`
	CandidateName  string         `json:"candidateName" validate:"required,max=200"`
	JobID          string         `json:"jobId,omitempty" validate:"max=200"`
	Message        string         `json:"message,omitempty" validate:"max=2000"`
	Status         ReferralStatus `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
