package models

import (
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog represents an admin action log entry
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	PrincipalID  string         `json:"principal_id" gorm:"not null;index:idx_activity_principal_date,sort:desc"`
	Email        string         `json:"email" gorm:"not null"`
	Source       string         `json:"source" gorm:"not null"` // cms_jwt, oidc
	Action       string         `json:"action" gorm:"not null;index"`
	ResourceType string         `json:"resource_type" gorm:"not null;index"`
	Details      datatypes.JSON `json:"details" gorm:"type:jsonb"` // {time_range, status_code}
	Status       string         `json:"status" gorm:"not null"`    // success, failed
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_principal_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

// TableName specifies the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}

const (
	ActionViewAnalytics         = "viewed_analytics"
	ActionExportAnalyticsReport = "exported_analytics_report"

	ResourceTypeAnalytics = "analytics"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)
