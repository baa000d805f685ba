package models

import "time"

type Review struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BookingID  uint `gorm:"uniqueIndex;not null" json:"bookingId"`
	ClientID   uint `gorm:"not null;index" json:"clientId"`
	ProviderID uint `gorm:"not null;index" json:"providerId"`

	Rating  int    `gorm:"not null" json:"rating"` // 1-5
	Comment string `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Client  *User    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
