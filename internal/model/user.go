package model

import (
	"strings"
	"time"
)

// Role is what a user is allowed to do. Both recognized roles may run
// reports; only supervisors manage the worker and camera registries.
type Role string

const (
	RoleSupervisor Role = "SAFETY_SUPERVISOR"
	RoleHR         Role = "HR"
)

func ParseRole(s string) (Role, bool) {
	candidate := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch candidate {
	case RoleSupervisor, RoleHR:
		return candidate, true
	}
	return "", false
}

// User is a system account holder (supervisor or HR), distinct from the
// monitored workers.
type User struct {
	ID           int        `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"size:128" json:"first_name"`
	LastName     string     `gorm:"size:128" json:"last_name"`
	Email        string     `gorm:"size:255" json:"email"`
	Department   string     `gorm:"size:128" json:"department"`
	Role         Role       `gorm:"type:varchar(32);not null" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Principal is the authenticated identity attached to a request by the
// auth middleware.
type Principal struct {
	UserID   int
	Username string
	Role     Role
}

func (p Principal) CanViewReports() bool {
	return p.Role == RoleSupervisor || p.Role == RoleHR
}

func (p Principal) CanManageRegistry() bool {
	return p.Role == RoleSupervisor
}
