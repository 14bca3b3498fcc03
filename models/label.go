package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LabelHistoryEntry is one regeneration event in a label's life. History is
// stored as an ordered JSON array, newest entry appended last.
type LabelHistoryEntry struct {
	Epc          string    `json:"epc"`
	ChangeType   string    `json:"changeType"`
	StationName  string    `json:"stationName,omitempty"`
	OperatorName string    `json:"operatorName,omitempty"`
	ChangedAt    time.Time `json:"changedAt"`
}

// R0Label tracks a reusable filter frame across regeneration cycles. The
// R0 code is the permanent identity; CurrentEpc changes each cycle.
type R0Label struct {
	ID                 uuid.UUID                              `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	R0Code             string                                 `gorm:"column:r0_code;uniqueIndex;not null" json:"r0Code"`
	CurrentEpc         string                                 `gorm:"column:current_epc;index" json:"currentEpc"`
	WorkOrderID        *uuid.UUID                             `gorm:"column:work_order_id;type:uuid" json:"workOrderId,omitempty"`
	OrderNumber        string                                 `gorm:"column:order_number" json:"orderNumber,omitempty"`
	CustomerName       string                                 `gorm:"column:customer_name" json:"customerName,omitempty"`
	CustomerCode       string                                 `gorm:"column:customer_code" json:"customerCode,omitempty"`
	ProductModel       string                                 `gorm:"column:product_model" json:"productModel,omitempty"`
	ProductCode        string                                 `gorm:"column:product_code" json:"productCode,omitempty"`
	RegenerationStatus string                                 `gorm:"column:regeneration_status" json:"regenerationStatus,omitempty"`
	RegenerationCount  int                                    `gorm:"column:regeneration_count;default:0" json:"regenerationCount"`
	History            datatypes.JSONSlice[LabelHistoryEntry] `gorm:"column:history;type:jsonb" json:"history"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// EpcHistory records one RFID code replacement.
type EpcHistory struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WorkOrderID  *uuid.UUID `gorm:"column:work_order_id;type:uuid;index" json:"workOrderId,omitempty"`
	OrderNumber  string     `gorm:"column:order_number" json:"orderNumber,omitempty"`
	ProductModel string     `gorm:"column:product_model" json:"productModel,omitempty"`
	OldEpc       string     `gorm:"column:old_epc;index" json:"oldEpc"`
	NewEpc       string     `gorm:"column:new_epc;index" json:"newEpc"`
	ChangeType   string     `gorm:"column:change_type" json:"changeType"`
	StationName  string     `gorm:"column:station_name" json:"stationName"`
	OperatorName string     `gorm:"column:operator_name" json:"operatorName"`
	Notes        string     `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
