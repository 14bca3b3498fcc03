package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quality inspection results.
const (
	InspectionPass = "PASS"
	InspectionNG   = "NG"
)

// OutgassingTest is one destructive sample test against a work order.
// Immutable once created.
type OutgassingTest struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TestNumber   string    `gorm:"column:test_number;uniqueIndex;not null" json:"testNumber"`
	WorkOrderID  uuid.UUID `gorm:"column:work_order_id;type:uuid;index;not null" json:"workOrderId"`
	OrderNumber  string    `gorm:"column:order_number"   json:"orderNumber"`
	ProductModel string    `gorm:"column:product_model"  json:"productModel"`
	BatchNumber  string    `gorm:"column:batch_number"   json:"batchNumber"`
	BatchSize    int       `gorm:"column:batch_size"     json:"batchSize"`
	SampleIndex  int       `gorm:"column:sample_index"   json:"sampleIndex"`
	RfidCode     string    `gorm:"column:rfid_code"      json:"rfidCode"`
	Result       string    `gorm:"column:result;not null" json:"result"`
	TestValue    float64   `gorm:"column:test_value"     json:"testValue"`
	Threshold    float64   `gorm:"column:threshold"      json:"threshold"`
	OperatorName string    `gorm:"column:operator_name"  json:"operatorName"`
	TestedAt     JSONTime  `gorm:"column:tested_at"      json:"testedAt"`
	Notes        string    `gorm:"column:notes"          json:"notes,omitempty"`
	Signature    string    `gorm:"column:signature"      json:"signature,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// DefectPosition is one defect location reported by the optical tool.
type DefectPosition struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// AoiInspection is the per-unit optical inspection verdict. One row per
// physical unit (RFID serial) per import batch; immutable once created.
type AoiInspection struct {
	ID               uuid.UUID                                `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InspectionNumber string                                   `gorm:"column:inspection_number;uniqueIndex;not null" json:"inspectionNumber"`
	WorkOrderID      uuid.UUID                                `gorm:"column:work_order_id;type:uuid;index;not null" json:"workOrderId"`
	OrderNumber      string                                   `gorm:"column:order_number"  json:"orderNumber"`
	ProductModel     string                                   `gorm:"column:product_model" json:"productModel"`
	RfidCode         string                                   `gorm:"column:rfid_code;index" json:"rfidCode"`
	Result           string                                   `gorm:"column:result;not null" json:"result"`
	DefectType       string                                   `gorm:"column:defect_type"   json:"defectType,omitempty"`
	DefectCount      int                                      `gorm:"column:defect_count;not null;default:0" json:"defectCount"`
	DefectPositions  datatypes.JSONSlice[DefectPosition]      `gorm:"column:defect_positions;type:jsonb" json:"defectPositions,omitempty"`
	ImagePath        string                                   `gorm:"column:image_path"    json:"imagePath,omitempty"`
	OperatorName     string                                   `gorm:"column:operator_name" json:"operatorName"`
	InspectedAt      JSONTime                                 `gorm:"column:inspected_at"  json:"inspectedAt"`
	ImportBatch      string                                   `gorm:"column:import_batch;index" json:"importBatch,omitempty"`
	Signature        string                                   `gorm:"column:signature"     json:"signature,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
