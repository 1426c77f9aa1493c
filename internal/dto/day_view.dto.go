package dto

import "time"

type DayEntryDTO struct {
	ID        uint      `json:"id"`
	Date      time.Time `json:"date"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
}
