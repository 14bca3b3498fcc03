package wms

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"smai.tw/mes/models"
)

// Service owns per-location stock items and their movement ledger. Every
// state change appends a Movement in the same transaction; the movement
// log is the audit source of truth, the item table a current-state cache.
type Service struct {
	store Store
	log   zerolog.Logger
}

// NewService wires a Service to its store.
func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log.With().Str("component", "wms").Logger()}
}

// InboundSpec receives goods from outside the warehouse.
type InboundSpec struct {
	LocationCode string     `json:"locationCode"`
	WorkOrderID  *uuid.UUID `json:"workOrderId"`
	Quantity     int        `json:"quantity"`
	Barcode      string     `json:"barcode"`
	OperatorName string     `json:"operatorName"`
	Reason       string     `json:"reason"`
}

// Inbound creates a stock item at the location and appends the inbound
// movement from EXTERNAL. Order metadata is copied onto the item when the
// originating work order is known.
func (s *Service) Inbound(spec InboundSpec) (*models.InventoryItem, error) {
	if spec.LocationCode == "" {
		return nil, fmt.Errorf("%w: locationCode is required", ErrValidation)
	}
	if spec.Quantity <= 0 {
		spec.Quantity = 1
	}

	item := &models.InventoryItem{
		LocationCode: spec.LocationCode,
		WorkOrderID:  spec.WorkOrderID,
		Quantity:     spec.Quantity,
		Barcode:      spec.Barcode,
		Status:       models.InventoryInStock,
		InboundDate:  models.JSONTime(time.Now()),
	}

	err := s.store.Atomically(func(tx Store) error {
		if spec.WorkOrderID != nil {
			if wo, err := tx.GetWorkOrder(*spec.WorkOrderID); err == nil {
				item.OrderNumber = wo.OrderNumber
				item.ProductModel = wo.ProductModel
				item.CustomerName = wo.CustomerName
			}
		}
		movement := &models.Movement{
			MovementNumber: models.NewDocumentNumber(models.PrefixMovement),
			FromLocation:   models.LocationExternal,
			ToLocation:     spec.LocationCode,
			WorkOrderID:    spec.WorkOrderID,
			OrderNumber:    item.OrderNumber,
			ProductModel:   item.ProductModel,
			Quantity:       item.Quantity,
			Barcode:        item.Barcode,
			MovementType:   models.MovementInbound,
			OperatorName:   spec.OperatorName,
			Reason:         reasonOrDefault(spec.Reason, "inbound"),
		}
		if err := tx.InsertMovement(movement); err != nil {
			return err
		}
		return tx.InsertItem(item)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("location", item.LocationCode).Str("barcode", item.Barcode).
		Int("quantity", item.Quantity).Msg("inbound")
	return item, nil
}

// OutboundSpec ships an item out of the warehouse.
type OutboundSpec struct {
	InventoryID  uuid.UUID `json:"inventoryId"`
	OperatorName string    `json:"operatorName"`
	Reason       string    `json:"reason"`
}

// Outbound appends the outbound movement to EXTERNAL, then destroys the
// item. Fails with ErrNotFound when the item does not exist.
func (s *Service) Outbound(spec OutboundSpec) error {
	if spec.InventoryID == uuid.Nil {
		return fmt.Errorf("%w: inventoryId is required", ErrValidation)
	}
	err := s.store.Atomically(func(tx Store) error {
		item, err := tx.GetItem(spec.InventoryID)
		if err != nil {
			return err
		}
		movement := &models.Movement{
			MovementNumber: models.NewDocumentNumber(models.PrefixMovement),
			FromLocation:   item.LocationCode,
			ToLocation:     models.LocationExternal,
			WorkOrderID:    item.WorkOrderID,
			OrderNumber:    item.OrderNumber,
			ProductModel:   item.ProductModel,
			Quantity:       item.Quantity,
			Barcode:        item.Barcode,
			MovementType:   models.MovementOutbound,
			OperatorName:   spec.OperatorName,
			Reason:         reasonOrDefault(spec.Reason, "outbound"),
		}
		if err := tx.InsertMovement(movement); err != nil {
			return err
		}
		return tx.DeleteItem(item.ID)
	})
	if err == nil {
		s.log.Info().Str("inventoryId", spec.InventoryID.String()).Msg("outbound")
	}
	return err
}

// TransferSpec relocates an item inside the warehouse.
type TransferSpec struct {
	InventoryID  uuid.UUID `json:"inventoryId"`
	ToLocation   string    `json:"toLocation"`
	OperatorName string    `json:"operatorName"`
	Reason       string    `json:"reason"`
}

// Transfer appends the transfer movement, then moves the item in place:
// same identity, same quantity and tag, new location.
func (s *Service) Transfer(spec TransferSpec) error {
	if spec.InventoryID == uuid.Nil {
		return fmt.Errorf("%w: inventoryId is required", ErrValidation)
	}
	if spec.ToLocation == "" {
		return fmt.Errorf("%w: toLocation is required", ErrValidation)
	}
	err := s.store.Atomically(func(tx Store) error {
		item, err := tx.GetItem(spec.InventoryID)
		if err != nil {
			return err
		}
		movement := &models.Movement{
			MovementNumber: models.NewDocumentNumber(models.PrefixMovement),
			FromLocation:   item.LocationCode,
			ToLocation:     spec.ToLocation,
			WorkOrderID:    item.WorkOrderID,
			OrderNumber:    item.OrderNumber,
			ProductModel:   item.ProductModel,
			Quantity:       item.Quantity,
			Barcode:        item.Barcode,
			MovementType:   models.MovementTransfer,
			OperatorName:   spec.OperatorName,
			Reason:         reasonOrDefault(spec.Reason, "transfer"),
		}
		if err := tx.InsertMovement(movement); err != nil {
			return err
		}
		item.LocationCode = spec.ToLocation
		return tx.UpdateItem(item)
	})
	if err == nil {
		s.log.Info().Str("inventoryId", spec.InventoryID.String()).
			Str("toLocation", spec.ToLocation).Msg("transfer")
	}
	return err
}

func reasonOrDefault(reason, fallback string) string {
	if reason == "" {
		return fallback
	}
	return reason
}
