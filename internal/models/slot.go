package models

import (
	"time"

	"github.com/google/uuid"
)

// Slot is one weekly timetable entry. The timetable is replaced wholesale on
// every save, so a slot has no identity beyond its position in the saved
// document. Overlapping and duplicate slots are allowed.
type Slot struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"not null;index"`
	Position  int       `gorm:"not null"`
	Day       string    `gorm:"not null"`
	StartTime string    `gorm:"not null"` // "HH:MM" wall clock
	EndTime   string    `gorm:"not null"`
	Subject   string    `gorm:"not null"`
	CreatedAt time.Time
}
