package mes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/mes"
)

func TestCreateWorkOrderDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 20})
	require.NoError(t, err)
	assert.Equal(t, models.OrderTypeNormal, wo.OrderType)
	assert.Equal(t, models.WorkOrderDraft, wo.Status)
	assert.NotEmpty(t, wo.OrderNumber)
	assert.Equal(t, 0, wo.ReworkCount)
}

func TestCreateWorkOrderRejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500"})
	assert.ErrorIs(t, err, mes.ErrValidation)
}

func TestReworkLineageCap(t *testing.T) {
	svc, _ := newTestService(t)

	source, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 10})
	require.NoError(t, err)

	rework, err := svc.CreateWorkOrder(mes.WorkOrderSpec{
		OrderType:         models.OrderTypeRework,
		ProductModel:      "HT-6500",
		Quantity:          2,
		SourceWorkOrderID: &source.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rework.ReworkCount)
	assert.Equal(t, source.OrderNumber, rework.SourceOrderNumber)

	// A unit is reworked at most once; chaining off the rework order
	// must fail.
	_, err = svc.CreateWorkOrder(mes.WorkOrderSpec{
		OrderType:         models.OrderTypeRework,
		ProductModel:      "HT-6500",
		Quantity:          1,
		SourceWorkOrderID: &rework.ID,
	})
	assert.ErrorIs(t, err, mes.ErrReworkLimitExceeded)
}

func TestReworkRequiresSource(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateWorkOrder(mes.WorkOrderSpec{
		OrderType:    models.OrderTypeRework,
		ProductModel: "HT-6500",
		Quantity:     1,
	})
	assert.ErrorIs(t, err, mes.ErrValidation)
}

func TestDeleteWorkOrderHidesFromList(t *testing.T) {
	svc, _ := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 5})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteWorkOrder(wo.ID))

	orders, err := svc.ListWorkOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)

	// The row survives for dispatch and report references.
	kept, err := svc.GetWorkOrder(wo.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkOrderCancelled, kept.Status)
}

func TestStaleWorkOrderWriteRejected(t *testing.T) {
	svc, store := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 5})
	require.NoError(t, err)

	first, err := store.GetWorkOrder(wo.ID)
	require.NoError(t, err)
	second, err := store.GetWorkOrder(wo.ID)
	require.NoError(t, err)

	require.NoError(t, store.UpdateWorkOrder(first))
	assert.ErrorIs(t, store.UpdateWorkOrder(second), mes.ErrVersionConflict)
}

func TestUpdateWorkOrderPatch(t *testing.T) {
	svc, _ := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 5})
	require.NoError(t, err)

	priority := "urgent"
	status := models.WorkOrderPending
	updated, err := svc.UpdateWorkOrder(wo.ID, mes.WorkOrderPatch{
		Priority: &priority,
		Status:   &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "urgent", updated.Priority)
	assert.Equal(t, models.WorkOrderPending, updated.Status)
	assert.Equal(t, "HT-6500", updated.ProductModel)
}
