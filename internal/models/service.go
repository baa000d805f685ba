package models

type Service struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"not null;index" json:"providerId"`

	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Price       int    `gorm:"not null" json:"price"`
	Duration    int    `gorm:"not null" json:"duration"` // minutes
	ImageURL    string `json:"imageUrl,omitempty"`
	IsActive    bool   `gorm:"not null" json:"isActive"`

	Provider *User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}
