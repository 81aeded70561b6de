package models

import "time"

type PoolImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PoolOwner string `gorm:"size:50;not null" json:"pool_owner"`
	Owner     User   `gorm:"foreignKey:PoolOwner;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ImageURL string `gorm:"size:255;not null" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}
