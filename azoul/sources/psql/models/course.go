package models

// Course is a language or cooking class offered on the site.
type Course struct {
	Base
	Title         string  `json:"title" gorm:"type:varchar(255);not null"`
	Description   string  `json:"description" gorm:"type:text"`
	Level         string  `json:"level" gorm:"type:varchar(64)"`
	DurationHours int     `json:"duration_hours"`
	PriceMAD      float64 `json:"price_mad"`
}

func (Course) TableName() string {
	return "courses"
}

func (c *Course) Validate() error {
	return required("title", c.Title)
}

type Guide struct {
	Base
	FullName  string `json:"full_name" gorm:"type:varchar(255);not null"`
	Languages string `json:"languages" gorm:"type:varchar(255)"` // comma separated codes
	Bio       string `json:"bio" gorm:"type:text"`
	Email     string `json:"email" gorm:"type:varchar(255)"`
	Phone     string `json:"phone" gorm:"type:varchar(64)"`
	PhotoURL  string `json:"photo_url" gorm:"type:varchar(512)"`
}

func (Guide) TableName() string {
	return "guides"
}

func (g *Guide) Validate() error {
	if err := required("full_name", g.FullName); err != nil {
		return err
	}
	if g.Email != "" {
		if err := validEmail("email", g.Email); err != nil {
			return err
		}
		g.Email = NormalizeEmail(g.Email)
	}
	return nil
}
