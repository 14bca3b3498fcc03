package wms

import (
	"github.com/google/uuid"

	"smai.tw/mes/models"
)

// Store is the persistence surface the warehouse ledger needs. The GORM
// implementation lives in store; an in-memory one backs the package tests.
// UpdateItem is an optimistic write on the item's Version column.
type Store interface {
	Atomically(fn func(Store) error) error

	GetItem(id uuid.UUID) (*models.InventoryItem, error)
	ListItems() ([]models.InventoryItem, error)
	InsertItem(item *models.InventoryItem) error
	UpdateItem(item *models.InventoryItem) error
	DeleteItem(id uuid.UUID) error

	InsertMovement(m *models.Movement) error
	ListMovements() ([]models.Movement, error)

	InsertStockTake(st *models.StockTake) error
	InsertStockTakeDetail(d *models.StockTakeDetail) error
	ListStockTakes() ([]models.StockTake, error)
	ListStockTakeDetails(stockTakeNumber string) ([]models.StockTakeDetail, error)

	GetLocationByCode(code string) (*models.WmsLocation, error)
	ListLocations() ([]models.WmsLocation, error)

	// Work-order lookup for enriching inbound items with order metadata.
	GetWorkOrder(id uuid.UUID) (*models.WorkOrder, error)
}
