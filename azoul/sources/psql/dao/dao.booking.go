package dao

import (
	"context"

	"azoul/azoul/sources/psql/models"

	"gorm.io/gorm"
)

type BookingDAO struct {
	*CRUD[models.Booking]
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{CRUD: NewCRUD[models.Booking](db)}
}

func (dao *BookingDAO) ListByTour(ctx context.Context, tourID string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := dao.DB.WithContext(ctx).Where("tour_id = ?", tourID).Order("travel_date asc").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
