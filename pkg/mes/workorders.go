package mes

import (
	"fmt"

	"github.com/google/uuid"

	"smai.tw/mes/models"
)

// WorkOrderSpec is the client payload for creating a work order.
type WorkOrderSpec struct {
	OrderNumber       string           `json:"orderNumber"`
	OrderType         string           `json:"orderType"`
	CustomerName      string           `json:"customerName"`
	CustomerSite      string           `json:"customerSite"`
	ProductModel      string           `json:"productModel"`
	Quantity          int              `json:"quantity"`
	Priority          string           `json:"priority"`
	DueDate           *models.JSONTime `json:"dueDate"`
	SourceWorkOrderID *uuid.UUID       `json:"sourceWorkOrderId"`
}

// WorkOrderPatch carries a direct metadata edit. Quantity counters and
// status are owned by the report cascade and not patchable here, except
// for the explicit status field used by planners (e.g. draft -> pending).
type WorkOrderPatch struct {
	CustomerName *string          `json:"customerName"`
	CustomerSite *string          `json:"customerSite"`
	ProductModel *string          `json:"productModel"`
	Quantity     *int             `json:"quantity"`
	Priority     *string          `json:"priority"`
	DueDate      *models.JSONTime `json:"dueDate"`
	Status       *string          `json:"status"`
}

// CreateWorkOrder opens a new work order. For rework orders the source
// order's rework count is checked against the cap: a unit is reworked at
// most once, after which it must be scrapped.
func (s *Service) CreateWorkOrder(spec WorkOrderSpec) (*models.WorkOrder, error) {
	if spec.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if spec.OrderType == "" {
		spec.OrderType = models.OrderTypeNormal
	}

	wo := &models.WorkOrder{
		OrderNumber:  spec.OrderNumber,
		OrderType:    spec.OrderType,
		CustomerName: spec.CustomerName,
		CustomerSite: spec.CustomerSite,
		ProductModel: spec.ProductModel,
		Quantity:     spec.Quantity,
		Priority:     spec.Priority,
		DueDate:      spec.DueDate,
		Status:       models.WorkOrderDraft,
	}
	if wo.OrderNumber == "" {
		wo.OrderNumber = models.NewDocumentNumber(models.PrefixWorkOrder)
	}

	if spec.OrderType == models.OrderTypeRework {
		if spec.SourceWorkOrderID == nil {
			return nil, fmt.Errorf("%w: rework order requires sourceWorkOrderId", ErrValidation)
		}
		source, err := s.store.GetWorkOrder(*spec.SourceWorkOrderID)
		if err != nil {
			return nil, err
		}
		if source.ReworkCount >= models.MaxReworkCount {
			return nil, ErrReworkLimitExceeded
		}
		wo.SourceWorkOrderID = &source.ID
		wo.SourceOrderNumber = source.OrderNumber
		wo.ReworkCount = source.ReworkCount + 1
	}

	if err := s.store.InsertWorkOrder(wo); err != nil {
		return nil, err
	}
	s.log.Info().Str("orderNumber", wo.OrderNumber).Str("orderType", wo.OrderType).
		Int("quantity", wo.Quantity).Msg("work order created")
	return wo, nil
}

// UpdateWorkOrder applies a direct metadata patch. No cascade runs here.
func (s *Service) UpdateWorkOrder(id uuid.UUID, patch WorkOrderPatch) (*models.WorkOrder, error) {
	var updated *models.WorkOrder
	err := s.store.Atomically(func(tx Store) error {
		wo, err := tx.GetWorkOrder(id)
		if err != nil {
			return err
		}
		if patch.CustomerName != nil {
			wo.CustomerName = *patch.CustomerName
		}
		if patch.CustomerSite != nil {
			wo.CustomerSite = *patch.CustomerSite
		}
		if patch.ProductModel != nil {
			wo.ProductModel = *patch.ProductModel
		}
		if patch.Quantity != nil {
			if *patch.Quantity <= 0 {
				return fmt.Errorf("%w: quantity must be positive", ErrValidation)
			}
			wo.Quantity = *patch.Quantity
		}
		if patch.Priority != nil {
			wo.Priority = *patch.Priority
		}
		if patch.DueDate != nil {
			wo.DueDate = patch.DueDate
		}
		if patch.Status != nil {
			wo.Status = *patch.Status
		}
		if err := tx.UpdateWorkOrder(wo); err != nil {
			return err
		}
		updated = wo
		return nil
	})
	return updated, err
}

// DeleteWorkOrder soft-deletes: the row stays so dispatches and reports
// keep valid references.
func (s *Service) DeleteWorkOrder(id uuid.UUID) error {
	return s.store.Atomically(func(tx Store) error {
		wo, err := tx.GetWorkOrder(id)
		if err != nil {
			return err
		}
		wo.Status = models.WorkOrderCancelled
		return tx.UpdateWorkOrder(wo)
	})
}

// GetWorkOrder loads one work order.
func (s *Service) GetWorkOrder(id uuid.UUID) (*models.WorkOrder, error) {
	return s.store.GetWorkOrder(id)
}

// ListWorkOrders returns all non-cancelled work orders.
func (s *Service) ListWorkOrders() ([]models.WorkOrder, error) {
	orders, err := s.store.ListWorkOrders()
	if err != nil {
		return nil, err
	}
	out := orders[:0]
	for _, wo := range orders {
		if wo.Status != models.WorkOrderCancelled {
			out = append(out, wo)
		}
	}
	return out, nil
}
