package models

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// NormalizeRole maps any unrecognized role value to the default client role.
// The users table is the source of truth for roles, but a row written by an
// older version of the system may carry an arbitrary string; it must never be
// trusted as-is.
func NormalizeRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleProvider:
		return RoleProvider
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleClient
	}
}

// BusinessInfo is the provider-only business record stored as a JSON column.
type BusinessInfo struct {
	BusinessName        string `json:"businessName"`
	BusinessDescription string `json:"businessDescription"`
	BusinessPhone       string `json:"businessPhone"`
	BusinessAddress     string `json:"businessAddress"`
	City                string `json:"city"`
	Province            string `json:"province"`
	ZipCode             string `json:"zipCode"`
	BIRCertificateURL   string `json:"birCertificateUrl,omitempty"`
	BusinessPermitURL   string `json:"businessPermitUrl,omitempty"`
	GovernmentIDURL     string `json:"governmentIdUrl,omitempty"`
	DocumentsSubmitted  bool   `json:"documentsSubmitted"`
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`

	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	FullName  string `gorm:"not null" json:"fullName"`

	Role Role `gorm:"type:varchar(20);not null;default:'client';index" json:"role"`

	ProfileImage string `json:"profileImage,omitempty"`
	PhoneNumber  string `gorm:"type:varchar(30)" json:"phoneNumber,omitempty"`
	Address      string `json:"address,omitempty"`

	IsVerified    bool                              `gorm:"default:false" json:"isVerified"`
	BusinessInfo  *datatypes.JSONType[BusinessInfo] `json:"businessInfo,omitempty"`
	TermsAccepted bool                              `gorm:"default:false" json:"termsAccepted"`
}

// AfterFind normalizes the role at the scan boundary so handlers never see a
// value outside the enum.
func (u *User) AfterFind(_ *gorm.DB) error {
	u.Role = NormalizeRole(string(u.Role))
	return nil
}

// Business returns the structured business info, or nil when absent.
func (u *User) Business() *BusinessInfo {
	if u.BusinessInfo == nil {
		return nil
	}
	v := u.BusinessInfo.Data()
	return &v
}
