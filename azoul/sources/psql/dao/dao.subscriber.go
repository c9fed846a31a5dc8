package dao

import (
	"context"
	"errors"

	"azoul/azoul/sources/psql/models"

	"gorm.io/gorm"
)

type SubscriberDAO struct {
	*CRUD[models.Subscriber]
}

func NewSubscriberDAO(db *gorm.DB) *SubscriberDAO {
	return &SubscriberDAO{CRUD: NewCRUD[models.Subscriber](db)}
}

// Subscribe is idempotent on the normalised email: an existing subscriber
// is reactivated and returned with created == false.
func (dao *SubscriberDAO) Subscribe(ctx context.Context, email, language string) (*models.Subscriber, bool, error) {
	sub := &models.Subscriber{Email: email, Language: language, Active: true}
	if err := sub.Validate(); err != nil {
		return nil, false, err
	}
	if sub.Language == "" {
		sub.Language = "en"
	}

	var existing models.Subscriber
	err := dao.DB.WithContext(ctx).Where("email = ?", sub.Email).First(&existing).Error
	switch {
	case err == nil:
		if !existing.Active {
			if err := dao.DB.WithContext(ctx).Model(&existing).Update("active", true).Error; err != nil {
				return nil, false, err
			}
			existing.Active = true
		}
		return &existing, false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, err
	}

	if err := dao.Create(ctx, sub); err != nil {
		return nil, false, err
	}
	return sub, true, nil
}
