package memstore

import (
	"github.com/google/uuid"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/mes"
)

// MES is an in-memory production store.
type MES struct {
	locker
	workOrders map[uuid.UUID]models.WorkOrder
	dispatches map[uuid.UUID]models.Dispatch
	reports    []models.Report
	outgassing []models.OutgassingTest
	aoi        []models.AoiInspection
}

// NewMES returns an empty production store.
func NewMES() *MES {
	return &MES{
		workOrders: make(map[uuid.UUID]models.WorkOrder),
		dispatches: make(map[uuid.UUID]models.Dispatch),
	}
}

// Atomically serializes the closure against other calls. There is no
// rollback; mutations inside fn apply immediately.
func (s *MES) Atomically(fn func(mes.Store) error) error {
	return fn(s)
}

func (s *MES) GetWorkOrder(id uuid.UUID) (*models.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wo, ok := s.workOrders[id]
	if !ok {
		return nil, mes.ErrNotFound
	}
	return &wo, nil
}

func (s *MES) ListWorkOrders() ([]models.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkOrder, 0, len(s.workOrders))
	for _, wo := range s.workOrders {
		out = append(out, wo)
	}
	return out, nil
}

func (s *MES) InsertWorkOrder(wo *models.WorkOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if wo.ID == uuid.Nil {
		wo.ID = uuid.New()
	}
	s.workOrders[wo.ID] = *wo
	return nil
}

func (s *MES) UpdateWorkOrder(wo *models.WorkOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.workOrders[wo.ID]
	if !ok {
		return mes.ErrNotFound
	}
	if cur.Version != wo.Version {
		return mes.ErrVersionConflict
	}
	wo.Version++
	s.workOrders[wo.ID] = *wo
	return nil
}

func (s *MES) GetDispatch(id uuid.UUID) (*models.Dispatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dispatches[id]
	if !ok {
		return nil, mes.ErrNotFound
	}
	return &d, nil
}

func (s *MES) ListDispatches() ([]models.Dispatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Dispatch, 0, len(s.dispatches))
	for _, d := range s.dispatches {
		out = append(out, d)
	}
	return out, nil
}

func (s *MES) InsertDispatch(d *models.Dispatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	s.dispatches[d.ID] = *d
	return nil
}

func (s *MES) UpdateDispatch(d *models.Dispatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.dispatches[d.ID]
	if !ok {
		return mes.ErrNotFound
	}
	if cur.Version != d.Version {
		return mes.ErrVersionConflict
	}
	d.Version++
	s.dispatches[d.ID] = *d
	return nil
}

func (s *MES) InsertReport(r *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	s.reports = append(s.reports, *r)
	return nil
}

func (s *MES) ListReports() ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Report, len(s.reports))
	copy(out, s.reports)
	return out, nil
}

func (s *MES) ListReportsByDispatch(dispatchID uuid.UUID) ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Report
	for _, r := range s.reports {
		if r.DispatchID == dispatchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MES) ListReportsByWorkOrder(workOrderID uuid.UUID) ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Report
	for _, r := range s.reports {
		if r.WorkOrderID == workOrderID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MES) InsertOutgassingTest(t *models.OutgassingTest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	s.outgassing = append(s.outgassing, *t)
	return nil
}

func (s *MES) ListOutgassingTests() ([]models.OutgassingTest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.OutgassingTest, len(s.outgassing))
	copy(out, s.outgassing)
	return out, nil
}

func (s *MES) ListOutgassingTestsByWorkOrder(workOrderID uuid.UUID) ([]models.OutgassingTest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.OutgassingTest
	for _, t := range s.outgassing {
		if t.WorkOrderID == workOrderID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *MES) InsertAoiInspection(a *models.AoiInspection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.aoi = append(s.aoi, *a)
	return nil
}

func (s *MES) ListAoiInspections() ([]models.AoiInspection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AoiInspection, len(s.aoi))
	copy(out, s.aoi)
	return out, nil
}

func (s *MES) ListAoiInspectionsByWorkOrder(workOrderID uuid.UUID) ([]models.AoiInspection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.AoiInspection
	for _, a := range s.aoi {
		if a.WorkOrderID == workOrderID {
			out = append(out, a)
		}
	}
	return out, nil
}
