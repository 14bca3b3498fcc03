package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog is one operator action, kept for traceability. Rows are only
// ever appended.
type AuditLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Timestamp    time.Time      `gorm:"column:timestamp;index;not null" json:"timestamp"`
	OperatorName string         `gorm:"column:operator_name" json:"operatorName"`
	OperatorCode string         `gorm:"column:operator_code" json:"operatorCode,omitempty"`
	Action       string         `gorm:"column:action;not null" json:"action"`
	Module       string         `gorm:"column:module;not null" json:"module"`
	TargetType   string         `gorm:"column:target_type;index" json:"targetType,omitempty"`
	TargetID     string         `gorm:"column:target_id;index" json:"targetId,omitempty"`
	TargetName   string         `gorm:"column:target_name" json:"targetName,omitempty"`
	Details      datatypes.JSON `gorm:"column:details;type:jsonb" json:"details,omitempty"`
	IPAddress    string         `gorm:"column:ip_address" json:"ipAddress,omitempty"`
	UserAgent    string         `gorm:"column:user_agent" json:"userAgent,omitempty"`
}
