package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is one immutable production event. Reports are append-only; a
// correction is expressed as a new report, never an edit.
type Report struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportNumber string    `gorm:"column:report_number;uniqueIndex;not null" json:"reportNumber"`
	WorkOrderID  uuid.UUID `gorm:"column:work_order_id;type:uuid;index;not null" json:"workOrderId"`
	DispatchID   uuid.UUID `gorm:"column:dispatch_id;type:uuid;index;not null" json:"dispatchId"`
	OperatorName string    `gorm:"column:operator_name"        json:"operatorName"`
	StationName  string    `gorm:"column:station_name"         json:"stationName"`
	Quantity     int       `gorm:"column:quantity;not null"    json:"quantity"`
	GoodQty      int       `gorm:"column:good_qty;not null"    json:"goodQty"`
	NgQty        int       `gorm:"column:ng_qty;not null"      json:"ngQty"`
	StartTime    *JSONTime `gorm:"column:start_time"           json:"startTime,omitempty"`
	EndTime      *JSONTime `gorm:"column:end_time"             json:"endTime,omitempty"`
	HasAbnormal  bool      `gorm:"column:has_abnormal;not null;default:false" json:"hasAbnormal"`
	AbnormalType string    `gorm:"column:abnormal_type"        json:"abnormalType,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
