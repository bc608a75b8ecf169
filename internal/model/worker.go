package model

import "time"

// Worker is a monitored factory worker. Workers never log in; they only
// accumulate violations detected by the camera pipeline.
type Worker struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	EmployeeID      string    `gorm:"uniqueIndex;size:64;not null" json:"employee_id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	ProfilePhotoURL *string   `json:"profile_photo_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
