package memstore

import (
	"github.com/google/uuid"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/wms"
)

// WMS is an in-memory warehouse store. Work orders are seeded directly
// by tests that exercise inbound enrichment.
type WMS struct {
	locker
	items      map[uuid.UUID]models.InventoryItem
	movements  []models.Movement
	stockTakes []models.StockTake
	details    []models.StockTakeDetail
	locations  map[string]models.WmsLocation
	workOrders map[uuid.UUID]models.WorkOrder
}

// NewWMS returns an empty warehouse store.
func NewWMS() *WMS {
	return &WMS{
		items:      make(map[uuid.UUID]models.InventoryItem),
		locations:  make(map[string]models.WmsLocation),
		workOrders: make(map[uuid.UUID]models.WorkOrder),
	}
}

// SeedWorkOrder makes a work order visible to inbound enrichment.
func (s *WMS) SeedWorkOrder(wo models.WorkOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workOrders[wo.ID] = wo
}

// SeedLocation registers a storage area.
func (s *WMS) SeedLocation(loc models.WmsLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[loc.Code] = loc
}

// Atomically serializes the closure against other calls. There is no
// rollback; mutations inside fn apply immediately.
func (s *WMS) Atomically(fn func(wms.Store) error) error {
	return fn(s)
}

func (s *WMS) GetItem(id uuid.UUID) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, wms.ErrNotFound
	}
	return &item, nil
}

func (s *WMS) ListItems() ([]models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *WMS) InsertItem(item *models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	s.items[item.ID] = *item
	return nil
}

func (s *WMS) UpdateItem(item *models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.items[item.ID]
	if !ok {
		return wms.ErrNotFound
	}
	if cur.Version != item.Version {
		return wms.ErrVersionConflict
	}
	item.Version++
	s.items[item.ID] = *item
	return nil
}

func (s *WMS) DeleteItem(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return wms.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *WMS) InsertMovement(m *models.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.movements = append(s.movements, *m)
	return nil
}

func (s *WMS) ListMovements() ([]models.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Movement, len(s.movements))
	copy(out, s.movements)
	return out, nil
}

func (s *WMS) InsertStockTake(st *models.StockTake) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	s.stockTakes = append(s.stockTakes, *st)
	return nil
}

func (s *WMS) InsertStockTakeDetail(d *models.StockTakeDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	s.details = append(s.details, *d)
	return nil
}

func (s *WMS) ListStockTakes() ([]models.StockTake, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StockTake, len(s.stockTakes))
	copy(out, s.stockTakes)
	return out, nil
}

func (s *WMS) ListStockTakeDetails(stockTakeNumber string) ([]models.StockTakeDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.StockTakeDetail
	for _, d := range s.details {
		if d.StockTakeNumber == stockTakeNumber {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *WMS) GetLocationByCode(code string) (*models.WmsLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc, ok := s.locations[code]
	if !ok {
		return nil, wms.ErrNotFound
	}
	return &loc, nil
}

func (s *WMS) ListLocations() ([]models.WmsLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WmsLocation, 0, len(s.locations))
	for _, loc := range s.locations {
		out = append(out, loc)
	}
	return out, nil
}

func (s *WMS) GetWorkOrder(id uuid.UUID) (*models.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wo, ok := s.workOrders[id]
	if !ok {
		return nil, wms.ErrNotFound
	}
	return &wo, nil
}
