package models

import "time"

type UserRole string

const (
	UserRoleOwner UserRole = "owner"
	UserRoleAdmin UserRole = "admin"
)

// ValidRole reports whether the role is one of the known roles.
func ValidRole(role UserRole) bool {
	return role == UserRoleOwner || role == UserRoleAdmin
}

// User is an administrative account. The password hash and the reset-token
// fields are never serialized; deletion is logical via the Active flag and
// deactivated accounts are filtered out of every query path.
type User struct {
	BaseModel
	Username             string     `gorm:"uniqueIndex;not null" json:"username"`
	Email                string     `json:"email,omitempty"`
	Role                 UserRole   `gorm:"type:varchar(20);not null;default:'owner'" json:"role"`
	PasswordHash         string     `gorm:"not null" json:"-"`
	PasswordChangedAt    *time.Time `json:"-"`
	PasswordResetToken   string     `json:"-"`
	PasswordResetExpires *time.Time `json:"-"`
	Active               bool       `gorm:"not null;default:true" json:"-"`
}
