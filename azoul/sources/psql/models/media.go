package models

// Media is an uploaded file; the bytes live in object storage under Key.
type Media struct {
	Base
	Key         string `json:"key" gorm:"type:varchar(512);uniqueIndex;not null"`
	FileName    string `json:"file_name" gorm:"type:varchar(255)"`
	ContentType string `json:"content_type" gorm:"type:varchar(128)"`
	Size        int64  `json:"size"`
	Alt         string `json:"alt" gorm:"type:varchar(255)"`
}

func (Media) TableName() string {
	return "media"
}

func (m *Media) Validate() error {
	return required("key", m.Key)
}

// All lists every table for AutoMigrate.
func All() []any {
	return []any{
		&Destination{}, &Feature{}, &Tour{}, &Accommodation{}, &Booking{},
		&Course{}, &Guide{}, &Subscriber{}, &UserProfile{}, &Media{},
	}
}
