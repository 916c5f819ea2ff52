package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:'student';check:role IN ('student','admin')"`
	LastSeenAt   time.Time
	CreatedAt    time.Time
}

// DisplayName falls back to the local part of the email when the user
// never set a name.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return "User"
}
