package services

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"strings"
	"time"
)

const codeGenerationAttempts = 5

type referralRepository interface {
	Add(ctx context.Context, referral *models.Referral) error
	ExistsCode(ctx context.Context, code string) (bool, error)
	GetByCode(ctx context.Context, code string) (*models.Referral, error)
	GetByReferrer(ctx context.Context, email string) ([]models.Referral, error)
	UpdateStatus(ctx context.Context, code string, status models.ReferralStatus) error
}

type ReferralService struct {
	referrals referralRepository
}

func NewReferralService(referrals referralRepository) *ReferralService {
	return &ReferralService{referrals: referrals}
}

func (s *ReferralService) Create(ctx context.Context, referral models.Referral) (models.Referral, error) {
	referral.ID = 0
	referral.ReferrerEmail = normalizeEmail(referral.ReferrerEmail)
	referral.CandidateEmail = normalizeEmail(referral.CandidateEmail)
	referral.CandidateName = strings.TrimSpace(referral.CandidateName)
	referral.Status = models.ReferralPending
	if err := validateStruct(referral); err != nil {
		return models.Referral{}, err
	}

	code, err := s.newCode(ctx)
	if err != nil {
		return models.Referral{}, err
	}
	referral.Code = code
	referral.CreatedAt = time.Now().UTC()
	referral.UpdatedAt = referral.CreatedAt

	if err = s.referrals.Add(ctx, &referral); err != nil {
		return models.Referral{}, err
	}
	return referral, nil
}

func (s *ReferralService) newCode(ctx context.Context) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		exists, err := s.referrals.ExistsCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique referral code after %d attempts", codeGenerationAttempts)
}

func (s *ReferralService) GetByCode(ctx context.Context, code string) (*models.Referral, error) {
	referral, err := s.referrals.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if referral == nil {
		return nil, ErrNotFound
	}
	return referral, nil
}

func (s *ReferralService) ListByReferrer(ctx context.Context, email string) ([]models.Referral, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, newValidationError("email is required")
	}
	return s.referrals.GetByReferrer(ctx, email)
}

// UpdateStatus may only be done by the referrer.
func (s *ReferralService) UpdateStatus(ctx context.Context, code string, status string, referrerEmail string) (*models.Referral, error) {
	newStatus, err := models.ToReferralStatus(status)
	if err != nil {
		return nil, newValidationError("%v", err)
	}

	referral, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if referral.ReferrerEmail != normalizeEmail(referrerEmail) {
		return nil, ErrForbidden
	}

	if err = s.referrals.UpdateStatus(ctx, referral.Code, newStatus); err != nil {
		return nil, err
	}
	referral.Status = newStatus
	referral.UpdatedAt = time.Now().UTC()
	return referral, nil
}
