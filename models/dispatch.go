package models

import (
	"time"

	"github.com/google/uuid"
)

// Dispatch lifecycle states.
const (
	DispatchPending    = "pending"
	DispatchInProgress = "in_progress"
	DispatchCompleted  = "completed"
	DispatchCancelled  = "cancelled"
)

// Dispatch assigns part of a work order to a station and operator.
type Dispatch struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DispatchNumber string    `gorm:"column:dispatch_number;uniqueIndex;not null" json:"dispatchNumber"`
	WorkOrderID    uuid.UUID `gorm:"column:work_order_id;type:uuid;index;not null" json:"workOrderId"`
	StationName    string    `gorm:"column:station_name;not null"                json:"stationName"`
	OperatorName   string    `gorm:"column:operator_name"                        json:"operatorName"`
	Quantity       int       `gorm:"column:quantity;not null"                    json:"quantity"`
	CompletedQty   int       `gorm:"column:completed_qty;not null;default:0"     json:"completedQty"`
	GoodQty        int       `gorm:"column:good_qty;not null;default:0"          json:"goodQty"`
	NgQty          int       `gorm:"column:ng_qty;not null;default:0"            json:"ngQty"`
	Status         string    `gorm:"column:status;not null;default:'pending'"    json:"status"`
	PlannedStartAt *JSONTime `gorm:"column:planned_start_at"                     json:"plannedStartAt,omitempty"`
	ActualStartAt  *JSONTime `gorm:"column:actual_start_at"                      json:"actualStartAt,omitempty"`
	ActualEndAt    *JSONTime `gorm:"column:actual_end_at"                        json:"actualEndAt,omitempty"`

	Version int `gorm:"column:version;not null;default:0" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
