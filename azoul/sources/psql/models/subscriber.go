package models

type Subscriber struct {
	Base
	Email    string `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Language string `json:"language" gorm:"type:varchar(8);default:'en'"`
	Active   bool   `json:"active" gorm:"not null"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

func (s *Subscriber) Validate() error {
	if err := validEmail("email", s.Email); err != nil {
		return err
	}
	s.Email = NormalizeEmail(s.Email)
	return nil
}
