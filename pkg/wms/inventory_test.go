package wms_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/wms"
	"smai.tw/mes/store/memstore"
)

func newTestService(t *testing.T) (*wms.Service, *memstore.WMS) {
	t.Helper()
	store := memstore.NewWMS()
	return wms.NewService(store, zerolog.Nop()), store
}

func TestInbound(t *testing.T) {
	svc, store := newTestService(t)

	woID := uuid.New()
	store.SeedWorkOrder(models.WorkOrder{
		ID:           woID,
		OrderNumber:  "WO-20250801-001",
		ProductModel: "HT-6500",
		CustomerName: "TSMC",
	})

	item, err := svc.Inbound(wms.InboundSpec{
		LocationCode: "Y3-3RA",
		WorkOrderID:  &woID,
		Quantity:     1,
		Barcode:      "BC-0001",
		OperatorName: "chen",
	})
	require.NoError(t, err)
	assert.Equal(t, "Y3-3RA", item.LocationCode)
	assert.Equal(t, models.InventoryInStock, item.Status)
	assert.Equal(t, "WO-20250801-001", item.OrderNumber)
	assert.Equal(t, "TSMC", item.CustomerName)

	movements, err := store.ListMovements()
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementInbound, movements[0].MovementType)
	assert.Equal(t, models.LocationExternal, movements[0].FromLocation)
	assert.Equal(t, "Y3-3RA", movements[0].ToLocation)
	assert.Equal(t, 1, movements[0].Quantity)
}

func TestInboundRequiresLocation(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Inbound(wms.InboundSpec{Barcode: "BC-0001"})
	assert.ErrorIs(t, err, wms.ErrValidation)
}

func TestOutboundDeletesItem(t *testing.T) {
	svc, store := newTestService(t)

	item, err := svc.Inbound(wms.InboundSpec{LocationCode: "Y3-3RA", Barcode: "BC-0001"})
	require.NoError(t, err)

	require.NoError(t, svc.Outbound(wms.OutboundSpec{InventoryID: item.ID, OperatorName: "chen"}))

	_, err = store.GetItem(item.ID)
	assert.ErrorIs(t, err, wms.ErrNotFound)

	movements, err := store.ListMovements()
	require.NoError(t, err)
	require.Len(t, movements, 2)
	out := movements[1]
	assert.Equal(t, models.MovementOutbound, out.MovementType)
	assert.Equal(t, "Y3-3RA", out.FromLocation)
	assert.Equal(t, models.LocationExternal, out.ToLocation)
}

func TestOutboundMissingItem(t *testing.T) {
	svc, store := newTestService(t)

	err := svc.Outbound(wms.OutboundSpec{InventoryID: uuid.New()})
	assert.ErrorIs(t, err, wms.ErrNotFound)

	// No ledger entry for a failed operation.
	movements, err := store.ListMovements()
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestTransferMovesItemInPlace(t *testing.T) {
	svc, store := newTestService(t)

	item, err := svc.Inbound(wms.InboundSpec{LocationCode: "Y3-3RA", Quantity: 4, Barcode: "BC-0002"})
	require.NoError(t, err)

	require.NoError(t, svc.Transfer(wms.TransferSpec{
		InventoryID:  item.ID,
		ToLocation:   "Y3-8RI",
		OperatorName: "chen",
	}))

	moved, err := store.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, moved.ID)
	assert.Equal(t, "Y3-8RI", moved.LocationCode)
	assert.Equal(t, 4, moved.Quantity)
	assert.Equal(t, "BC-0002", moved.Barcode)

	movements, err := store.ListMovements()
	require.NoError(t, err)
	require.Len(t, movements, 2)
	transfer := movements[1]
	assert.Equal(t, models.MovementTransfer, transfer.MovementType)
	assert.Equal(t, "Y3-3RA", transfer.FromLocation)
	assert.Equal(t, "Y3-8RI", transfer.ToLocation)
}

func TestSummaryGroupsByLocation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Inbound(wms.InboundSpec{LocationCode: "Y3-3RA", Quantity: 2, Barcode: "BC-1"})
	require.NoError(t, err)
	_, err = svc.Inbound(wms.InboundSpec{LocationCode: "Y3-3RA", Quantity: 3, Barcode: "BC-2"})
	require.NoError(t, err)
	_, err = svc.Inbound(wms.InboundSpec{LocationCode: "Y3-8RI", Quantity: 1, Barcode: "BC-3"})
	require.NoError(t, err)

	summary, err := svc.Summary()
	require.NoError(t, err)

	byLoc := map[string]wms.LocationSummary{}
	for _, s := range summary {
		byLoc[s.LocationCode] = s
	}
	assert.Equal(t, 2, byLoc["Y3-3RA"].ItemCount)
	assert.Equal(t, 5, byLoc["Y3-3RA"].TotalQty)
	assert.Equal(t, 1, byLoc["Y3-8RI"].ItemCount)
}
