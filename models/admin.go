package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Database Models
// ════════════════════════════════════════════════════════════

const (
	AdminRoleSuperAdmin = "super_admin"
	AdminRoleAdmin      = "admin"

	AdminStatusActive    = "active"
	AdminStatusSuspended = "suspended"
)

// Admin represents an admin user in the CMS
type Admin struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null"`
	Name        string     `json:"name" gorm:"not null"`
	Role        string     `json:"role" gorm:"not null;index"`   // super_admin, admin
	Status      string     `json:"status" gorm:"not null;index"` // active, inactive, suspended
	LastLoginAt *time.Time `json:"last_login_at"`
	JoinedAt    time.Time  `json:"joined_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if a.Status == "" {
		a.Status = AdminStatusActive
	}
	if a.Role == "" {
		a.Role = AdminRoleAdmin
	}
	return nil
}

// TableName specifies the table name
func (Admin) TableName() string {
	return "admins"
}

// CanViewAnalytics reports whether the admin may read sales analytics
func (a *Admin) CanViewAnalytics() bool {
	if a.Status != AdminStatusActive {
		return false
	}
	return a.Role == AdminRoleAdmin || a.Role == AdminRoleSuperAdmin
}
