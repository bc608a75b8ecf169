package model

import "time"

// Camera is a fixed camera watching a named zone. A zone can have more
// than one camera; violations reference the camera that produced them.
type Camera struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Zone        string    `gorm:"size:128;index;not null" json:"zone"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
