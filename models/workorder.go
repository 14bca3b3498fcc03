package models

import (
	"time"

	"github.com/google/uuid"
)

// Work order lifecycle states.
const (
	WorkOrderDraft      = "draft"
	WorkOrderPending    = "pending"
	WorkOrderInProgress = "in_progress"
	WorkOrderCompleted  = "completed"
	WorkOrderCancelled  = "cancelled"
)

// Work order types.
const (
	OrderTypeNormal = "normal"
	OrderTypeRework = "rework"
)

// A unit may be reworked at most once; after that it is scrapped.
const MaxReworkCount = 1

// WorkOrder is one unit of manufacturing demand with a target quantity.
// Quantity counters are maintained by the report cascade; CompletedQty is
// always GoodQty + NgQty. Deleting a work order only marks it cancelled so
// historical dispatches and reports keep valid references.
type WorkOrder struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber       string     `gorm:"column:order_number;uniqueIndex;not null" json:"orderNumber"`
	OrderType         string     `gorm:"column:order_type;not null;default:'normal'"  json:"orderType"`
	CustomerName      string     `gorm:"column:customer_name"                         json:"customerName"`
	CustomerSite      string     `gorm:"column:customer_site"                         json:"customerSite"`
	ProductModel      string     `gorm:"column:product_model"                         json:"productModel"`
	Quantity          int        `gorm:"column:quantity;not null"                     json:"quantity"`
	CompletedQty      int        `gorm:"column:completed_qty;not null;default:0"      json:"completedQty"`
	GoodQty           int        `gorm:"column:good_qty;not null;default:0"           json:"goodQty"`
	NgQty             int        `gorm:"column:ng_qty;not null;default:0"             json:"ngQty"`
	Status            string     `gorm:"column:status;not null;default:'draft';index" json:"status"`
	Priority          string     `gorm:"column:priority"                              json:"priority"`
	DueDate           *JSONTime  `gorm:"column:due_date"                              json:"dueDate,omitempty"`
	SourceWorkOrderID *uuid.UUID `gorm:"column:source_work_order_id;type:uuid"        json:"sourceWorkOrderId,omitempty"`
	SourceOrderNumber string     `gorm:"column:source_order_number"                   json:"sourceOrderNumber,omitempty"`
	ReworkCount       int        `gorm:"column:rework_count;not null;default:0"       json:"reworkCount"`

	// Version guards read-modify-write updates; bumped on every write.
	Version int `gorm:"column:version;not null;default:0" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
