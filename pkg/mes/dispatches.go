package mes

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"smai.tw/mes/models"
)

// DispatchSpec is the client payload for creating a dispatch.
type DispatchSpec struct {
	DispatchNumber string           `json:"dispatchNumber"`
	WorkOrderID    uuid.UUID        `json:"workOrderId"`
	StationName    string           `json:"stationName"`
	OperatorName   string           `json:"operatorName"`
	Quantity       int              `json:"quantity"`
	PlannedStartAt *models.JSONTime `json:"plannedStartAt"`
}

// CreateDispatch assigns work to a station. The first dispatch against a
// draft or pending work order marks the order as started.
func (s *Service) CreateDispatch(spec DispatchSpec) (*models.Dispatch, error) {
	if spec.WorkOrderID == uuid.Nil {
		return nil, fmt.Errorf("%w: workOrderId is required", ErrValidation)
	}
	if spec.StationName == "" {
		return nil, fmt.Errorf("%w: stationName is required", ErrValidation)
	}
	if spec.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	d := &models.Dispatch{
		DispatchNumber: spec.DispatchNumber,
		WorkOrderID:    spec.WorkOrderID,
		StationName:    spec.StationName,
		OperatorName:   spec.OperatorName,
		Quantity:       spec.Quantity,
		PlannedStartAt: spec.PlannedStartAt,
		Status:         models.DispatchPending,
	}
	if d.DispatchNumber == "" {
		d.DispatchNumber = models.NewDocumentNumber(models.PrefixDispatch)
	}

	err := s.store.Atomically(func(tx Store) error {
		wo, err := tx.GetWorkOrder(spec.WorkOrderID)
		if err != nil {
			return err
		}
		if wo.Status == models.WorkOrderDraft || wo.Status == models.WorkOrderPending {
			wo.Status = models.WorkOrderInProgress
			if err := tx.UpdateWorkOrder(wo); err != nil {
				return err
			}
		}
		return tx.InsertDispatch(d)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("dispatchNumber", d.DispatchNumber).Str("station", d.StationName).
		Int("quantity", d.Quantity).Msg("dispatch created")
	return d, nil
}

// StartDispatch records the actual start of floor work.
func (s *Service) StartDispatch(id uuid.UUID) (*models.Dispatch, error) {
	var started *models.Dispatch
	err := s.store.Atomically(func(tx Store) error {
		d, err := tx.GetDispatch(id)
		if err != nil {
			return err
		}
		d.Status = models.DispatchInProgress
		d.ActualStartAt = models.NewJSONTime(time.Now())
		if err := tx.UpdateDispatch(d); err != nil {
			return err
		}
		started = d
		return nil
	})
	return started, err
}

// CompleteDispatch stamps the actual end time. Completion status itself is
// derived from report quantities, not from this call.
func (s *Service) CompleteDispatch(id uuid.UUID) (*models.Dispatch, error) {
	var done *models.Dispatch
	err := s.store.Atomically(func(tx Store) error {
		d, err := tx.GetDispatch(id)
		if err != nil {
			return err
		}
		d.ActualEndAt = models.NewJSONTime(time.Now())
		if err := tx.UpdateDispatch(d); err != nil {
			return err
		}
		done = d
		return nil
	})
	return done, err
}

// DeleteDispatch soft-deletes by marking the dispatch cancelled.
func (s *Service) DeleteDispatch(id uuid.UUID) error {
	return s.store.Atomically(func(tx Store) error {
		d, err := tx.GetDispatch(id)
		if err != nil {
			return err
		}
		d.Status = models.DispatchCancelled
		return tx.UpdateDispatch(d)
	})
}

// GetDispatch loads one dispatch.
func (s *Service) GetDispatch(id uuid.UUID) (*models.Dispatch, error) {
	return s.store.GetDispatch(id)
}

// ListDispatches returns all non-cancelled dispatches.
func (s *Service) ListDispatches() ([]models.Dispatch, error) {
	dispatches, err := s.store.ListDispatches()
	if err != nil {
		return nil, err
	}
	out := dispatches[:0]
	for _, d := range dispatches {
		if d.Status != models.DispatchCancelled {
			out = append(out, d)
		}
	}
	return out, nil
}
