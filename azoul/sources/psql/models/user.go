package models

type UserProfile struct {
	Base
	FullName string  `json:"full_name" gorm:"type:varchar(255);not null"`
	Email    string  `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone    string  `json:"phone" gorm:"type:varchar(64)"`
	Country  string  `json:"country" gorm:"type:varchar(64)"`
	Language string  `json:"language" gorm:"type:varchar(8)"`
	ImageURL *string `json:"image_url,omitempty" gorm:"type:varchar(512)"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

func (u *UserProfile) Validate() error {
	if err := required("full_name", u.FullName); err != nil {
		return err
	}
	if err := validEmail("email", u.Email); err != nil {
		return err
	}
	u.Email = NormalizeEmail(u.Email)
	return nil
}
