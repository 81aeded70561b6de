package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookedUsername string `gorm:"size:50;not null" json:"booked_username"`
	Booker         User   `gorm:"foreignKey:BookedUsername;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PoolID uint `gorm:"not null" json:"pool_id"`
	Pool   Pool `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`

	CreatedAt time.Time `json:"reservation_date_created"`
}
