package repositories

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"gorm.io/gorm"
)

type Contacts struct {
	db *gorm.DB
}

func NewContactsRepository(db *gorm.DB) *Contacts {
	return &Contacts{db: db}
}

func (repo *Contacts) Add(ctx context.Context, message *models.ContactMessage) error {
	return repo.db.WithContext(ctx).Create(message).Error
}
