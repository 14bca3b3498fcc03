package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Reference data. All master records are soft-deleted by flipping IsActive;
// list endpoints only return active rows.

// Customer with its plant sites.
type Customer struct {
	ID       uuid.UUID                    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string                       `gorm:"column:name;not null" json:"name"`
	Code     string                       `gorm:"column:code;uniqueIndex" json:"code"`
	Sites    datatypes.JSONSlice[string]  `gorm:"column:sites;type:jsonb" json:"sites"`
	IsActive bool                         `gorm:"column:is_active;not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Product (filter model) master record.
type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"column:name;not null" json:"name"`
	Code     string    `gorm:"column:code;uniqueIndex" json:"code"`
	Type     string    `gorm:"column:type" json:"type"`
	IsActive bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Part is a raw-material master record.
type Part struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PartNumber  string    `gorm:"column:part_number;uniqueIndex;not null" json:"partNumber"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Spec        string    `gorm:"column:spec"          json:"spec,omitempty"`
	Unit        string    `gorm:"column:unit"          json:"unit,omitempty"`
	Category    string    `gorm:"column:category"      json:"category,omitempty"`
	SafetyStock int       `gorm:"column:safety_stock;default:0" json:"safetyStock"`
	Notes       string    `gorm:"column:notes"         json:"notes,omitempty"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Operator is a floor worker or QC inspector. PinHash stores a bcrypt hash
// of the login PIN and never leaves the server.
type Operator struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"column:name;not null" json:"name"`
	Code     string    `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Email    string    `gorm:"column:email" json:"email,omitempty"`
	Role     string    `gorm:"column:role;not null;default:'operator'" json:"role"`
	PinHash  string    `gorm:"column:pin_hash" json:"-"`
	IsActive bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// NgReason catalogs the reasons a unit can be rejected.
type NgReason struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Code        string    `gorm:"column:code;uniqueIndex" json:"code"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	SortOrder   int       `gorm:"column:sort_order;default:0" json:"sortOrder"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// NgDetail breaks a report's NG quantity down by reason, with the scanned
// unit barcodes attached.
type NgDetail struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportID    uuid.UUID                   `gorm:"column:report_id;type:uuid;index;not null" json:"reportId"`
	DispatchID  uuid.UUID                   `gorm:"column:dispatch_id;type:uuid" json:"dispatchId"`
	WorkOrderID uuid.UUID                   `gorm:"column:work_order_id;type:uuid" json:"workOrderId"`
	ReasonID    uuid.UUID                   `gorm:"column:reason_id;type:uuid" json:"reasonId"`
	ReasonName  string                      `gorm:"column:reason_name" json:"reasonName"`
	Quantity    int                         `gorm:"column:quantity;not null" json:"quantity"`
	Barcodes    datatypes.JSONSlice[string] `gorm:"column:barcodes;type:jsonb" json:"barcodes,omitempty"`
	Notes       string                      `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
