package repositories

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Subscribers struct {
	db *gorm.DB
}

func NewSubscribersRepository(db *gorm.DB) *Subscribers {
	return &Subscribers{db: db}
}

func (repo *Subscribers) Save(ctx context.Context, subscriber models.Subscriber) error {
	return repo.db.WithContext(ctx).Save(&subscriber).Error
}

func (repo *Subscribers) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	if err := repo.db.WithContext(ctx).First(&subscriber, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscriber, nil
}

// RemoveByToken reports whether a subscriber with the token existed.
func (repo *Subscribers) RemoveByToken(ctx context.Context, token string) (bool, error) {
	res := repo.db.WithContext(ctx).Delete(&models.Subscriber{}, "unsubscribe_token = ?", token)
	return res.RowsAffected > 0, res.Error
}
