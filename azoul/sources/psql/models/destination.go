package models

type Destination struct {
	Base
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Slug        string `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Region      string `json:"region" gorm:"type:varchar(255)"`
	Summary     string `json:"summary" gorm:"type:text"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url" gorm:"type:varchar(512)"`
}

func (Destination) TableName() string {
	return "destinations"
}

// Validate fills a missing slug from the name.
func (d *Destination) Validate() error {
	if err := required("name", d.Name); err != nil {
		return err
	}
	if d.Slug == "" {
		d.Slug = Slugify(d.Name)
	}
	return required("slug", d.Slug)
}

// Feature is a highlight shown on the home page, optionally tied to a destination.
type Feature struct {
	Base
	Title         string  `json:"title" gorm:"type:varchar(255);not null"`
	Description   string  `json:"description" gorm:"type:text"`
	Icon          string  `json:"icon" gorm:"type:varchar(64)"`
	DestinationID *string `json:"destination_id,omitempty" gorm:"type:varchar(36);index"`
}

func (Feature) TableName() string {
	return "features"
}

func (f *Feature) Validate() error {
	return required("title", f.Title)
}
