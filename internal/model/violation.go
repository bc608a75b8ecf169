package model

import (
	"strings"
	"time"
)

// PPEType is the closed set of personal-protective-equipment categories
// the detection pipeline reports on.
type PPEType string

const (
	PPEHelmet  PPEType = "HELMET"
	PPEVest    PPEType = "VEST"
	PPEGloves  PPEType = "GLOVES"
	PPEGoggles PPEType = "GOGGLES"
)

// PPETypes lists every recognized type in declaration order.
func PPETypes() []PPEType {
	return []PPEType{PPEHelmet, PPEVest, PPEGloves, PPEGoggles}
}

// ParsePPEType matches s against the enumeration, case-insensitively.
func ParsePPEType(s string) (PPEType, bool) {
	candidate := PPEType(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range PPETypes() {
		if t == candidate {
			return t, true
		}
	}
	return "", false
}

func (t PPEType) String() string {
	return string(t)
}

type ViolationStatus string

const (
	ViolationPending   ViolationStatus = "PENDING"
	ViolationReviewed  ViolationStatus = "REVIEWED"
	ViolationDismissed ViolationStatus = "DISMISSED"
)

// ParseViolationStatus matches s against the status enumeration.
func ParseViolationStatus(s string) (ViolationStatus, bool) {
	candidate := ViolationStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch candidate {
	case ViolationPending, ViolationReviewed, ViolationDismissed:
		return candidate, true
	}
	return "", false
}

// Violation is a single PPE violation detected by the AI pipeline.
// Rows are created by the external ingestion path; this service only
// reads them (and lets reviewers update the status).
type Violation struct {
	ID              int             `gorm:"primaryKey" json:"id"`
	WorkerID        int             `gorm:"index;not null" json:"worker_id"`
	Worker          *Worker         `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE" json:"worker,omitempty"`
	CameraID        int             `gorm:"index;not null" json:"camera_id"`
	Camera          *Camera         `gorm:"foreignKey:CameraID;constraint:OnDelete:CASCADE" json:"camera,omitempty"`
	ViolationType   PPEType         `gorm:"type:varchar(32);index;not null" json:"violation_type"`
	DetectedAt      time.Time       `gorm:"index;not null" json:"detected_at"`
	ConfidenceScore int             `json:"confidence_score"`
	Status          ViolationStatus `gorm:"type:varchar(32);default:PENDING" json:"status"`
	ImageURL        *string         `json:"image_url,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}
