package models

import "time"

type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SenderUsername string `gorm:"size:50;not null" json:"sender_username"`
	Sender         User   `gorm:"foreignKey:SenderUsername;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	RecipientUsername string `gorm:"size:50;not null" json:"recipient_username"`
	Recipient         User   `gorm:"foreignKey:RecipientUsername;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title string `gorm:"size:100" json:"title"`
	Body  string `gorm:"size:255;not null" json:"body"`

	// Plain column on purpose: the pool may be deleted while the thread
	// stays readable.
	Listing uint `json:"listing"`

	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}
