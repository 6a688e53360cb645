package user

import (
	"time"

	"gorm.io/gorm"
)

// Roles recognized by the portal. Parents sign up through the site; coach
// and admin accounts are provisioned by hand.
const (
	RoleParent = "parent"
	RoleCoach  = "coach"
	RoleAdmin  = "admin"
)

// User is a portal account, typically a parent managing one or more youth
// players.
type User struct {
	gorm.Model
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"unique;not null" json:"email"`
	Password   string    `json:"-"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `gorm:"type:VARCHAR(20);default:'parent'" json:"role"`
	LastActive time.Time `json:"last_active"`
}

// RefreshToken is a persisted long-lived token; revoking it server-side
// ends the session even if the client keeps the string.
type RefreshToken struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
}
