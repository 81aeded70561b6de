package models

import "time"

type Pool struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerUsername string `gorm:"size:50;not null" json:"owner_username"`
	Owner         User   `gorm:"foreignKey:OwnerUsername;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Rate        float64 `gorm:"not null" json:"rate"`
	Size        string  `gorm:"size:100;not null" json:"size"`
	Description string  `gorm:"size:255;not null" json:"description"`
	City        string  `gorm:"size:100;not null;index" json:"city"`

	OrigImageURL  string `gorm:"size:255" json:"orig_image_url"`
	SmallImageURL string `gorm:"size:255" json:"small_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
