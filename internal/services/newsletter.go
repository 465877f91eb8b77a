package services

import (
	"context"
	"github.com/google/uuid"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/samber/lo"
	"strings"
	"time"
)

type subscriberRepository interface {
	Save(ctx context.Context, subscriber models.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	RemoveByToken(ctx context.Context, token string) (bool, error)
}

type NewsletterService struct {
	subscribers subscriberRepository
}

func NewNewsletterService(subscribers subscriberRepository) *NewsletterService {
	return &NewsletterService{subscribers: subscribers}
}

// Subscribe is idempotent: subscribing again only updates the interests.
func (s *NewsletterService) Subscribe(ctx context.Context, email string, interests []string) (models.Subscriber, error) {
	subscriber := models.Subscriber{
		Email: normalizeEmail(email),
		Interests: lo.Uniq(lo.FilterMap(interests, func(interest string, _ int) (string, bool) {
			interest = strings.ToLower(strings.TrimSpace(interest))
			return interest, interest != ""
		})),
	}
	if err := validateStruct(subscriber); err != nil {
		return models.Subscriber{}, err
	}

	existing, err := s.subscribers.GetByEmail(ctx, subscriber.Email)
	if err != nil {
		return models.Subscriber{}, err
	}
	if existing != nil {
		subscriber.UnsubscribeToken = existing.UnsubscribeToken
		subscriber.SubscribedAt = existing.SubscribedAt
	} else {
		subscriber.UnsubscribeToken = uuid.NewString()
		subscriber.SubscribedAt = time.Now().UTC()
	}

	if err = s.subscribers.Save(ctx, subscriber); err != nil {
		return models.Subscriber{}, err
	}
	return subscriber, nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return newValidationError("token is required")
	}
	removed, err := s.subscribers.RemoveByToken(ctx, token)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
