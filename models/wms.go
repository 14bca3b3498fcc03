package models

import (
	"time"

	"github.com/google/uuid"
)

// Movement types.
const (
	MovementInbound    = "inbound"
	MovementOutbound   = "outbound"
	MovementTransfer   = "transfer"
	MovementAdjustment = "adjustment"
)

// LocationExternal is the sentinel location for goods entering or leaving
// the warehouse.
const LocationExternal = "EXTERNAL"

// Inventory item states.
const (
	InventoryInStock = "in_stock"
)

// WmsLocation is one named storage area in the plant.
type WmsLocation struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code         string    `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Factory      string    `gorm:"column:factory" json:"factory,omitempty"`
	LocationType string    `gorm:"column:location_type" json:"locationType,omitempty"`
	Capacity     int       `gorm:"column:capacity;default:0" json:"capacity"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	SortOrder    int       `gorm:"column:sort_order;default:0" json:"sortOrder"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// InventoryItem is the current-state cache of one tagged stock unit. The
// movement log is the source of truth; the item row is derived from it.
// An item lives at exactly one location, is created on inbound, relocated
// in place on transfer, and deleted on outbound.
type InventoryItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LocationCode string     `gorm:"column:location_code;index;not null" json:"locationCode"`
	WorkOrderID  *uuid.UUID `gorm:"column:work_order_id;type:uuid" json:"workOrderId,omitempty"`
	OrderNumber  string     `gorm:"column:order_number"  json:"orderNumber,omitempty"`
	ProductModel string     `gorm:"column:product_model" json:"productModel,omitempty"`
	CustomerName string     `gorm:"column:customer_name" json:"customerName,omitempty"`
	Quantity     int        `gorm:"column:quantity;not null" json:"quantity"`
	Barcode      string     `gorm:"column:barcode;index" json:"barcode"`
	Status       string     `gorm:"column:status;not null;default:'in_stock'" json:"status"`
	InboundDate  JSONTime   `gorm:"column:inbound_date" json:"inboundDate"`

	Version int `gorm:"column:version;not null;default:0" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Movement is the append-only ledger entry behind every inventory state
// change. Never updated or deleted. Quantity is signed for adjustments.
type Movement struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MovementNumber string     `gorm:"column:movement_number;uniqueIndex;not null" json:"movementNumber"`
	FromLocation   string     `gorm:"column:from_location;not null" json:"fromLocation"`
	ToLocation     string     `gorm:"column:to_location;not null"   json:"toLocation"`
	WorkOrderID    *uuid.UUID `gorm:"column:work_order_id;type:uuid" json:"workOrderId,omitempty"`
	OrderNumber    string     `gorm:"column:order_number"  json:"orderNumber,omitempty"`
	ProductModel   string     `gorm:"column:product_model" json:"productModel,omitempty"`
	Quantity       int        `gorm:"column:quantity;not null" json:"quantity"`
	Barcode        string     `gorm:"column:barcode;index" json:"barcode,omitempty"`
	MovementType   string     `gorm:"column:movement_type;not null;index" json:"movementType"`
	OperatorName   string     `gorm:"column:operator_name" json:"operatorName"`
	Reason         string     `gorm:"column:reason" json:"reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// StockTake is one completed counting session against a location.
type StockTake struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StockTakeNumber string    `gorm:"column:stock_take_number;uniqueIndex;not null" json:"stockTakeNumber"`
	LocationCode    string    `gorm:"column:location_code;not null" json:"locationCode"`
	LocationName    string    `gorm:"column:location_name" json:"locationName,omitempty"`
	OperatorName    string    `gorm:"column:operator_name" json:"operatorName"`
	TotalItems      int       `gorm:"column:total_items;not null" json:"totalItems"`
	AdjustedItems   int       `gorm:"column:adjusted_items;not null" json:"adjustedItems"`
	Status          string    `gorm:"column:status;not null" json:"status"`
	Notes           string    `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// StockTakeDetail is one counted item within a session. A detail row is
// written for every counted item, diff or not.
type StockTakeDetail struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StockTakeNumber string    `gorm:"column:stock_take_number;index;not null" json:"stockTakeNumber"`
	InventoryID     uuid.UUID `gorm:"column:inventory_id;type:uuid" json:"inventoryId"`
	Barcode         string    `gorm:"column:barcode" json:"barcode,omitempty"`
	OrderNumber     string    `gorm:"column:order_number" json:"orderNumber,omitempty"`
	ProductModel    string    `gorm:"column:product_model" json:"productModel,omitempty"`
	SystemQty       int       `gorm:"column:system_qty;not null" json:"systemQty"`
	ActualQty       int       `gorm:"column:actual_qty;not null" json:"actualQty"`
	DiffQty         int       `gorm:"column:diff_qty;not null" json:"diffQty"`
	Notes           string    `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
