package wms

import (
	"fmt"

	"github.com/google/uuid"

	"smai.tw/mes/models"
)

// CountedItem is one physically counted unit in a stock take.
type CountedItem struct {
	InventoryID uuid.UUID `json:"inventoryId"`
	ActualQty   int       `json:"actualQty"`
	Notes       string    `json:"notes"`
}

// StockTakeSpec is one counting session over a location.
type StockTakeSpec struct {
	LocationCode string        `json:"locationCode"`
	LocationName string        `json:"locationName"`
	OperatorName string        `json:"operatorName"`
	Notes        string        `json:"notes"`
	Items        []CountedItem `json:"items"`
}

// CreateStockTake reconciles counted quantities against the book. Every
// counted item gets a detail row; a nonzero difference additionally
// corrects the item quantity and appends one adjustment movement whose
// signed quantity equals the difference.
func (s *Service) CreateStockTake(spec StockTakeSpec) (*models.StockTake, error) {
	if spec.LocationCode == "" {
		return nil, fmt.Errorf("%w: locationCode is required", ErrValidation)
	}
	if len(spec.Items) == 0 {
		return nil, fmt.Errorf("%w: items must not be empty", ErrValidation)
	}

	session := &models.StockTake{
		StockTakeNumber: models.NewStockTakeNumber(),
		LocationCode:    spec.LocationCode,
		LocationName:    spec.LocationName,
		OperatorName:    spec.OperatorName,
		TotalItems:      len(spec.Items),
		Status:          "completed",
		Notes:           spec.Notes,
	}

	err := s.store.Atomically(func(tx Store) error {
		for _, counted := range spec.Items {
			item, err := tx.GetItem(counted.InventoryID)
			if err != nil {
				return err
			}
			diff := counted.ActualQty - item.Quantity

			detail := &models.StockTakeDetail{
				StockTakeNumber: session.StockTakeNumber,
				InventoryID:     item.ID,
				Barcode:         item.Barcode,
				OrderNumber:     item.OrderNumber,
				ProductModel:    item.ProductModel,
				SystemQty:       item.Quantity,
				ActualQty:       counted.ActualQty,
				DiffQty:         diff,
				Notes:           counted.Notes,
			}
			if err := tx.InsertStockTakeDetail(detail); err != nil {
				return err
			}
			if diff == 0 {
				continue
			}

			movement := &models.Movement{
				MovementNumber: models.NewDocumentNumber(models.PrefixMovement),
				FromLocation:   item.LocationCode,
				ToLocation:     item.LocationCode,
				WorkOrderID:    item.WorkOrderID,
				OrderNumber:    item.OrderNumber,
				ProductModel:   item.ProductModel,
				Quantity:       diff,
				Barcode:        item.Barcode,
				MovementType:   models.MovementAdjustment,
				OperatorName:   spec.OperatorName,
				Reason:         fmt.Sprintf("stock take adjustment: %+d", diff),
			}
			if err := tx.InsertMovement(movement); err != nil {
				return err
			}
			item.Quantity = counted.ActualQty
			if err := tx.UpdateItem(item); err != nil {
				return err
			}
			session.AdjustedItems++
		}
		return tx.InsertStockTake(session)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("stockTakeNumber", session.StockTakeNumber).
		Int("totalItems", session.TotalItems).
		Int("adjustedItems", session.AdjustedItems).Msg("stock take completed")
	return session, nil
}

// GetItem returns one stock item.
func (s *Service) GetItem(id uuid.UUID) (*models.InventoryItem, error) {
	return s.store.GetItem(id)
}

// ListItems returns the current stock state.
func (s *Service) ListItems() ([]models.InventoryItem, error) {
	return s.store.ListItems()
}

// ListMovements returns the movement ledger, newest first.
func (s *Service) ListMovements() ([]models.Movement, error) {
	return s.store.ListMovements()
}

// ListStockTakes returns past counting sessions, newest first.
func (s *Service) ListStockTakes() ([]models.StockTake, error) {
	return s.store.ListStockTakes()
}

// ListStockTakeDetails returns the per-item rows of one session.
func (s *Service) ListStockTakeDetails(stockTakeNumber string) ([]models.StockTakeDetail, error) {
	return s.store.ListStockTakeDetails(stockTakeNumber)
}

// ListLocations returns the configured storage areas.
func (s *Service) ListLocations() ([]models.WmsLocation, error) {
	return s.store.ListLocations()
}

// LocationSummary is the aggregate stock picture for one location.
type LocationSummary struct {
	LocationCode string `json:"locationCode"`
	ItemCount    int    `json:"itemCount"`
	TotalQty     int    `json:"totalQty"`
}

// Summary groups current stock by location.
func (s *Service) Summary() ([]LocationSummary, error) {
	items, err := s.store.ListItems()
	if err != nil {
		return nil, err
	}
	byLoc := make(map[string]*LocationSummary)
	var order []*LocationSummary
	for _, item := range items {
		sum, ok := byLoc[item.LocationCode]
		if !ok {
			sum = &LocationSummary{LocationCode: item.LocationCode}
			byLoc[item.LocationCode] = sum
			order = append(order, sum)
		}
		sum.ItemCount++
		sum.TotalQty += item.Quantity
	}
	out := make([]LocationSummary, len(order))
	for i, sum := range order {
		out[i] = *sum
	}
	return out, nil
}
