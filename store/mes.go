package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/mes"
)

// MES is the production-side store over one *gorm.DB handle, which may
// be the shared pool or a transaction.
type MES struct {
	db *gorm.DB
}

// NewMES returns a production store bound to db.
func NewMES(db *gorm.DB) *MES {
	return &MES{db: db}
}

// Atomically runs fn inside one database transaction, retrying the
// whole closure on version conflicts.
func (s *MES) Atomically(fn func(mes.Store) error) error {
	var err error
	for attempt := 0; attempt <= versionConflictRetries; attempt++ {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return fn(&MES{db: tx})
		})
		if !errors.Is(err, mes.ErrVersionConflict) {
			return err
		}
	}
	return err
}

func (s *MES) GetWorkOrder(id uuid.UUID) (*models.WorkOrder, error) {
	var wo models.WorkOrder
	if err := s.db.First(&wo, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, mes.ErrNotFound)
	}
	return &wo, nil
}

func (s *MES) ListWorkOrders() ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := s.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (s *MES) InsertWorkOrder(wo *models.WorkOrder) error {
	return s.db.Create(wo).Error
}

func (s *MES) UpdateWorkOrder(wo *models.WorkOrder) error {
	read := wo.Version
	wo.Version = read + 1
	res := s.db.Model(wo).Where("version = ?", read).
		Select("*").Omit("id", "created_at").Updates(wo)
	if res.Error != nil {
		wo.Version = read
		return res.Error
	}
	if res.RowsAffected == 0 {
		wo.Version = read
		return mes.ErrVersionConflict
	}
	return nil
}

func (s *MES) GetDispatch(id uuid.UUID) (*models.Dispatch, error) {
	var d models.Dispatch
	if err := s.db.First(&d, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, mes.ErrNotFound)
	}
	return &d, nil
}

func (s *MES) ListDispatches() ([]models.Dispatch, error) {
	var dispatches []models.Dispatch
	err := s.db.Order("created_at DESC").Find(&dispatches).Error
	return dispatches, err
}

func (s *MES) InsertDispatch(d *models.Dispatch) error {
	return s.db.Create(d).Error
}

func (s *MES) UpdateDispatch(d *models.Dispatch) error {
	read := d.Version
	d.Version = read + 1
	res := s.db.Model(d).Where("version = ?", read).
		Select("*").Omit("id", "created_at").Updates(d)
	if res.Error != nil {
		d.Version = read
		return res.Error
	}
	if res.RowsAffected == 0 {
		d.Version = read
		return mes.ErrVersionConflict
	}
	return nil
}

func (s *MES) InsertReport(r *models.Report) error {
	return s.db.Create(r).Error
}

func (s *MES) ListReports() ([]models.Report, error) {
	var reports []models.Report
	err := s.db.Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (s *MES) ListReportsByDispatch(dispatchID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.Where("dispatch_id = ?", dispatchID).
		Order("created_at ASC").Find(&reports).Error
	return reports, err
}

func (s *MES) ListReportsByWorkOrder(workOrderID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.Where("work_order_id = ?", workOrderID).
		Order("created_at ASC").Find(&reports).Error
	return reports, err
}

func (s *MES) InsertOutgassingTest(t *models.OutgassingTest) error {
	return s.db.Create(t).Error
}

func (s *MES) ListOutgassingTests() ([]models.OutgassingTest, error) {
	var tests []models.OutgassingTest
	err := s.db.Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (s *MES) ListOutgassingTestsByWorkOrder(workOrderID uuid.UUID) ([]models.OutgassingTest, error) {
	var tests []models.OutgassingTest
	err := s.db.Where("work_order_id = ?", workOrderID).
		Order("created_at ASC").Find(&tests).Error
	return tests, err
}

func (s *MES) InsertAoiInspection(a *models.AoiInspection) error {
	return s.db.Create(a).Error
}

func (s *MES) ListAoiInspections() ([]models.AoiInspection, error) {
	var inspections []models.AoiInspection
	err := s.db.Order("created_at DESC").Find(&inspections).Error
	return inspections, err
}

func (s *MES) ListAoiInspectionsByWorkOrder(workOrderID uuid.UUID) ([]models.AoiInspection, error) {
	var inspections []models.AoiInspection
	err := s.db.Where("work_order_id = ?", workOrderID).
		Order("created_at ASC").Find(&inspections).Error
	return inspections, err
}
