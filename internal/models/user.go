package models

import "time"

type User struct {
	Username string `gorm:"primaryKey;size:50" json:"username"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Location     string `gorm:"size:100" json:"location"`
	ImageURL     string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
