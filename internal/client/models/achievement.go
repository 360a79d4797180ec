package models

import "time"

// Achievement is read-only, scoped to one user.
type Achievement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	DateEarned  time.Time `json:"date_earned"`
}
