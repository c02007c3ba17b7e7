package models

import "time"

// Gender values accepted for a user record.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type User struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Surname   string    `json:"surname" gorm:"size:255;not null"`
	Gender    string    `json:"gender" gorm:"size:50;not null"`
	IsTrusted bool      `json:"isTrusted" gorm:"column:is_trusted;not null;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
