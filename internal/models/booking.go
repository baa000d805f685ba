package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ValidBookingStatus reports whether s is one of the four booking states.
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ClientID   uint `gorm:"not null;index" json:"clientId"`
	ProviderID uint `gorm:"not null;index" json:"providerId"`
	ServiceID  uint `gorm:"not null;index" json:"serviceId"`

	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ScheduledDate time.Time     `gorm:"not null" json:"scheduledDate"`
	Notes         string        `gorm:"type:text" json:"notes,omitempty"`

	// TotalPrice is snapshotted from the service at booking time and does not
	// follow later price edits.
	TotalPrice int `gorm:"not null" json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`

	Client   *User    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Provider *User    `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Service  *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
