package models

type Accommodation struct {
	Base
	Name          string  `json:"name" gorm:"type:varchar(255);not null"`
	Kind          string  `json:"kind" gorm:"type:varchar(64)"` // riad, hotel, camp, ...
	DestinationID *string `json:"destination_id,omitempty" gorm:"type:varchar(36);index"`
	Address       string  `json:"address" gorm:"type:varchar(512)"`
	PricePerNight float64 `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	ImageURL      string  `json:"image_url" gorm:"type:varchar(512)"`
}

func (Accommodation) TableName() string {
	return "accommodations"
}

func (a *Accommodation) Validate() error {
	if err := required("name", a.Name); err != nil {
		return err
	}
	if a.Rating < 0 || a.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	}
	return nil
}
