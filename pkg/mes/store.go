package mes

import (
	"github.com/google/uuid"

	"smai.tw/mes/models"
)

// Store is the persistence surface the production ledgers need. The GORM
// implementation lives in store; an in-memory one backs the package tests.
//
// Update methods perform an optimistic write: they match on the record's
// Version as read, bump it, and return ErrVersionConflict when another
// writer got there first.
type Store interface {
	// Atomically runs fn against a store bound to one transaction. A
	// version conflict inside fn retries the whole closure a bounded
	// number of times before surfacing.
	Atomically(fn func(Store) error) error

	GetWorkOrder(id uuid.UUID) (*models.WorkOrder, error)
	ListWorkOrders() ([]models.WorkOrder, error)
	InsertWorkOrder(wo *models.WorkOrder) error
	UpdateWorkOrder(wo *models.WorkOrder) error

	GetDispatch(id uuid.UUID) (*models.Dispatch, error)
	ListDispatches() ([]models.Dispatch, error)
	InsertDispatch(d *models.Dispatch) error
	UpdateDispatch(d *models.Dispatch) error

	InsertReport(r *models.Report) error
	ListReports() ([]models.Report, error)
	ListReportsByDispatch(dispatchID uuid.UUID) ([]models.Report, error)
	ListReportsByWorkOrder(workOrderID uuid.UUID) ([]models.Report, error)

	InsertOutgassingTest(t *models.OutgassingTest) error
	ListOutgassingTests() ([]models.OutgassingTest, error)
	ListOutgassingTestsByWorkOrder(workOrderID uuid.UUID) ([]models.OutgassingTest, error)

	InsertAoiInspection(a *models.AoiInspection) error
	ListAoiInspections() ([]models.AoiInspection, error)
	ListAoiInspectionsByWorkOrder(workOrderID uuid.UUID) ([]models.AoiInspection, error)
}
