package dao

import (
	"context"
	"errors"

	"azoul/azoul/sources/psql/models"

	"gorm.io/gorm"
)

type DestinationDAO struct {
	*CRUD[models.Destination]
}

func NewDestinationDAO(db *gorm.DB) *DestinationDAO {
	return &DestinationDAO{CRUD: NewCRUD[models.Destination](db)}
}

func (dao *DestinationDAO) GetBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	var d models.Destination
	err := dao.DB.WithContext(ctx).Where("slug = ?", slug).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Upsert creates d unless its slug already exists. It reports whether a
// row was created.
func (dao *DestinationDAO) Upsert(ctx context.Context, d *models.Destination) (bool, error) {
	existing, err := dao.GetBySlug(ctx, d.Slug)
	if err != nil {
		return false, err
	}
	if existing != nil {
		*d = *existing
		return false, nil
	}
	return true, dao.Create(ctx, d)
}
