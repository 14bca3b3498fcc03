package wms_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/wms"
)

func TestStockTakeNoDifferences(t *testing.T) {
	svc, store := newTestService(t)

	item, err := svc.Inbound(wms.InboundSpec{LocationCode: "Y3-3RA", Quantity: 5, Barcode: "BC-1"})
	require.NoError(t, err)

	session, err := svc.CreateStockTake(wms.StockTakeSpec{
		LocationCode: "Y3-3RA",
		OperatorName: "chen",
		Items:        []wms.CountedItem{{InventoryID: item.ID, ActualQty: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, session.TotalItems)
	assert.Equal(t, 0, session.AdjustedItems)
	assert.Equal(t, "completed", session.Status)

	// A detail row is written even when the count matches the book.
	details, err := store.ListStockTakeDetails(session.StockTakeNumber)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 5, details[0].SystemQty)
	assert.Equal(t, 5, details[0].ActualQty)
	assert.Equal(t, 0, details[0].DiffQty)

	// And no adjustment movement.
	movements, err := store.ListMovements()
	require.NoError(t, err)
	for _, m := range movements {
		assert.NotEqual(t, models.MovementAdjustment, m.MovementType)
	}
}

func TestStockTakeAdjustsOnDifference(t *testing.T) {
	svc, store := newTestService(t)

	short, err := svc.Inbound(wms.InboundSpec{LocationCode: "Y3-3RA", Quantity: 10, Barcode: "BC-1"})
	require.NoError(t, err)
	over, err := svc.Inbound(wms.InboundSpec{LocationCode: "Y3-3RA", Quantity: 3, Barcode: "BC-2"})
	require.NoError(t, err)

	session, err := svc.CreateStockTake(wms.StockTakeSpec{
		LocationCode: "Y3-3RA",
		OperatorName: "chen",
		Items: []wms.CountedItem{
			{InventoryID: short.ID, ActualQty: 8},
			{InventoryID: over.ID, ActualQty: 4},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, session.TotalItems)
	assert.Equal(t, 2, session.AdjustedItems)

	// Item quantities now match the physical count.
	refreshed, err := store.GetItem(short.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, refreshed.Quantity)
	refreshed, err = store.GetItem(over.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, refreshed.Quantity)

	// Exactly one adjustment movement per differing item, carrying the
	// signed difference.
	movements, err := store.ListMovements()
	require.NoError(t, err)
	var adjustments []models.Movement
	for _, m := range movements {
		if m.MovementType == models.MovementAdjustment {
			adjustments = append(adjustments, m)
		}
	}
	require.Len(t, adjustments, 2)

	byBarcode := map[string]models.Movement{}
	for _, m := range adjustments {
		byBarcode[m.Barcode] = m
	}
	assert.Equal(t, -2, byBarcode["BC-1"].Quantity)
	assert.Equal(t, 1, byBarcode["BC-2"].Quantity)
	assert.Equal(t, "stock take adjustment: -2", byBarcode["BC-1"].Reason)
	assert.Equal(t, "stock take adjustment: +1", byBarcode["BC-2"].Reason)
}

func TestStockTakeMixedItems(t *testing.T) {
	svc, store := newTestService(t)

	matching, err := svc.Inbound(wms.InboundSpec{LocationCode: "Y3-3RA", Quantity: 2, Barcode: "BC-1"})
	require.NoError(t, err)
	differing, err := svc.Inbound(wms.InboundSpec{LocationCode: "Y3-3RA", Quantity: 2, Barcode: "BC-2"})
	require.NoError(t, err)

	session, err := svc.CreateStockTake(wms.StockTakeSpec{
		LocationCode: "Y3-3RA",
		Items: []wms.CountedItem{
			{InventoryID: matching.ID, ActualQty: 2},
			{InventoryID: differing.ID, ActualQty: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, session.TotalItems)
	assert.Equal(t, 1, session.AdjustedItems)

	details, err := store.ListStockTakeDetails(session.StockTakeNumber)
	require.NoError(t, err)
	assert.Len(t, details, 2)
}

func TestStockTakeValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateStockTake(wms.StockTakeSpec{Items: []wms.CountedItem{{InventoryID: uuid.New()}}})
	assert.ErrorIs(t, err, wms.ErrValidation)

	_, err = svc.CreateStockTake(wms.StockTakeSpec{LocationCode: "Y3-3RA"})
	assert.ErrorIs(t, err, wms.ErrValidation)

	_, err = svc.CreateStockTake(wms.StockTakeSpec{
		LocationCode: "Y3-3RA",
		Items:        []wms.CountedItem{{InventoryID: uuid.New(), ActualQty: 1}},
	})
	assert.ErrorIs(t, err, wms.ErrNotFound)
}
