package models

import "time"

// Appointment occupies exactly one hour-aligned slot. The unique index on
// Slot is what makes the slot exclusive across service instances.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Slot time.Time `gorm:"uniqueIndex;not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
