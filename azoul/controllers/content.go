package controllers

import (
	"azoul/azoul/sources/psql/dao"
	"azoul/azoul/sources/psql/models"

	"gorm.io/gorm"
)

// Content groups the CRUD controllers of the site tables.
type Content struct {
	Destinations   *ResourceController[models.Destination, *models.Destination]
	Features       *ResourceController[models.Feature, *models.Feature]
	Tours          *ResourceController[models.Tour, *models.Tour]
	Accommodations *ResourceController[models.Accommodation, *models.Accommodation]
	Bookings       *ResourceController[models.Booking, *models.Booking]
	Courses        *ResourceController[models.Course, *models.Course]
	Guides         *ResourceController[models.Guide, *models.Guide]
	Users          *ResourceController[models.UserProfile, *models.UserProfile]
	Subscribers    *SubscriberController
	BookingDAO     *dao.BookingDAO
	DestinationDAO *dao.DestinationDAO
}

func NewContent(db *gorm.DB) *Content {
	destinations := dao.NewDestinationDAO(db)
	bookings := dao.NewBookingDAO(db)
	return &Content{
		Destinations:   NewResourceController[models.Destination, *models.Destination](destinations.CRUD),
		Features:       NewResourceController[models.Feature, *models.Feature](dao.NewCRUD[models.Feature](db)),
		Tours:          NewResourceController[models.Tour, *models.Tour](dao.NewCRUD[models.Tour](db)),
		Accommodations: NewResourceController[models.Accommodation, *models.Accommodation](dao.NewCRUD[models.Accommodation](db)),
		Bookings:       NewResourceController[models.Booking, *models.Booking](bookings.CRUD),
		Courses:        NewResourceController[models.Course, *models.Course](dao.NewCRUD[models.Course](db)),
		Guides:         NewResourceController[models.Guide, *models.Guide](dao.NewCRUD[models.Guide](db)),
		Users:          NewResourceController[models.UserProfile, *models.UserProfile](dao.NewCRUD[models.UserProfile](db)),
		Subscribers:    NewSubscriberController(dao.NewSubscriberDAO(db)),
		BookingDAO:     bookings,
		DestinationDAO: destinations,
	}
}
