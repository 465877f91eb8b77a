package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/irreplaceable/internal/domain/events"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"strings"
	"time"
)

type contactRepository interface {
	Add(ctx context.Context, message *models.ContactMessage) error
}

type ContactService struct {
	bus      EventBus.Bus
	contacts contactRepository
}

func NewContactService(bus EventBus.Bus, contacts contactRepository) *ContactService {
	return &ContactService{bus: bus, contacts: contacts}
}

func (s *ContactService) Submit(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	message.ID = 0
	message.Name = strings.TrimSpace(message.Name)
	message.Email = normalizeEmail(message.Email)
	message.Subject = strings.TrimSpace(message.Subject)
	message.Message = strings.TrimSpace(message.Message)
	if err := validateStruct(message); err != nil {
		return models.ContactMessage{}, err
	}

	message.CreatedAt = time.Now().UTC()
	if err := s.contacts.Add(ctx, &message); err != nil {
		return models.ContactMessage{}, err
	}

	s.bus.Publish(events.ContactReceivedTopic, events.ContactReceived{Message: message})
	return message, nil
}
