package models

import "time"

type Tour struct {
	Base
	Title         string  `json:"title" gorm:"type:varchar(255);not null"`
	Summary       string  `json:"summary" gorm:"type:text"`
	DestinationID *string `json:"destination_id,omitempty" gorm:"type:varchar(36);index"`
	DurationDays  int     `json:"duration_days"`
	PriceMAD      float64 `json:"price_mad"`
	ImageURL      string  `json:"image_url" gorm:"type:varchar(512)"`
}

func (Tour) TableName() string {
	return "tours"
}

func (t *Tour) Validate() error {
	if err := required("title", t.Title); err != nil {
		return err
	}
	if t.DurationDays < 0 {
		return &ValidationError{Field: "duration_days", Reason: "must not be negative"}
	}
	if t.PriceMAD < 0 {
		return &ValidationError{Field: "price_mad", Reason: "must not be negative"}
	}
	return nil
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Base
	TourID     string        `json:"tour_id" gorm:"type:varchar(36);index;not null"`
	FullName   string        `json:"full_name" gorm:"type:varchar(255);not null"`
	Email      string        `json:"email" gorm:"type:varchar(255);not null"`
	Guests     int           `json:"guests" gorm:"not null"`
	TravelDate time.Time     `json:"travel_date"`
	Status     BookingStatus `json:"status" gorm:"type:varchar(32);default:'pending'"`
	Notes      string        `json:"notes" gorm:"type:text"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) Validate() error {
	if err := required("tour_id", b.TourID); err != nil {
		return err
	}
	if err := required("full_name", b.FullName); err != nil {
		return err
	}
	if err := validEmail("email", b.Email); err != nil {
		return err
	}
	b.Email = NormalizeEmail(b.Email)
	if b.Guests < 1 {
		return &ValidationError{Field: "guests", Reason: "must be at least 1"}
	}
	switch b.Status {
	case "":
		b.Status = BookingPending
	case BookingPending, BookingConfirmed, BookingCancelled:
	default:
		return &ValidationError{Field: "status", Reason: "must be pending, confirmed or cancelled"}
	}
	return nil
}
