package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/wms"
)

// WMS is the warehouse-side store over one *gorm.DB handle.
type WMS struct {
	db *gorm.DB
}

// NewWMS returns a warehouse store bound to db.
func NewWMS(db *gorm.DB) *WMS {
	return &WMS{db: db}
}

// Atomically runs fn inside one database transaction, retrying the
// whole closure on version conflicts.
func (s *WMS) Atomically(fn func(wms.Store) error) error {
	var err error
	for attempt := 0; attempt <= versionConflictRetries; attempt++ {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return fn(&WMS{db: tx})
		})
		if !errors.Is(err, wms.ErrVersionConflict) {
			return err
		}
	}
	return err
}

func (s *WMS) GetItem(id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, wms.ErrNotFound)
	}
	return &item, nil
}

func (s *WMS) ListItems() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *WMS) InsertItem(item *models.InventoryItem) error {
	return s.db.Create(item).Error
}

func (s *WMS) UpdateItem(item *models.InventoryItem) error {
	read := item.Version
	item.Version = read + 1
	res := s.db.Model(item).Where("version = ?", read).
		Select("*").Omit("id", "created_at").Updates(item)
	if res.Error != nil {
		item.Version = read
		return res.Error
	}
	if res.RowsAffected == 0 {
		item.Version = read
		return wms.ErrVersionConflict
	}
	return nil
}

func (s *WMS) DeleteItem(id uuid.UUID) error {
	res := s.db.Delete(&models.InventoryItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return wms.ErrNotFound
	}
	return nil
}

func (s *WMS) InsertMovement(m *models.Movement) error {
	return s.db.Create(m).Error
}

func (s *WMS) ListMovements() ([]models.Movement, error) {
	var movements []models.Movement
	err := s.db.Order("created_at DESC").Find(&movements).Error
	return movements, err
}

func (s *WMS) InsertStockTake(st *models.StockTake) error {
	return s.db.Create(st).Error
}

func (s *WMS) InsertStockTakeDetail(d *models.StockTakeDetail) error {
	return s.db.Create(d).Error
}

func (s *WMS) ListStockTakes() ([]models.StockTake, error) {
	var sessions []models.StockTake
	err := s.db.Order("created_at DESC").Find(&sessions).Error
	return sessions, err
}

func (s *WMS) ListStockTakeDetails(stockTakeNumber string) ([]models.StockTakeDetail, error) {
	var details []models.StockTakeDetail
	err := s.db.Where("stock_take_number = ?", stockTakeNumber).
		Order("created_at ASC").Find(&details).Error
	return details, err
}

func (s *WMS) GetLocationByCode(code string) (*models.WmsLocation, error) {
	var loc models.WmsLocation
	if err := s.db.First(&loc, "code = ?", code).Error; err != nil {
		return nil, mapNotFound(err, wms.ErrNotFound)
	}
	return &loc, nil
}

func (s *WMS) ListLocations() ([]models.WmsLocation, error) {
	var locations []models.WmsLocation
	err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC, code ASC").Find(&locations).Error
	return locations, err
}

func (s *WMS) GetWorkOrder(id uuid.UUID) (*models.WorkOrder, error) {
	var wo models.WorkOrder
	if err := s.db.First(&wo, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, wms.ErrNotFound)
	}
	return &wo, nil
}
