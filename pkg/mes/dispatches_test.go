package mes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/mes"
)

func TestCreateDispatchPromotesWorkOrder(t *testing.T) {
	svc, _ := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 20})
	require.NoError(t, err)
	require.Equal(t, models.WorkOrderDraft, wo.Status)

	d, err := svc.CreateDispatch(mes.DispatchSpec{
		WorkOrderID: wo.ID, StationName: "welding-1", Quantity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DispatchPending, d.Status)
	assert.NotEmpty(t, d.DispatchNumber)

	refreshed, err := svc.GetWorkOrder(wo.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkOrderInProgress, refreshed.Status)
}

func TestCreateDispatchLeavesStartedOrderAlone(t *testing.T) {
	svc, _ := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 20})
	require.NoError(t, err)

	_, err = svc.CreateDispatch(mes.DispatchSpec{WorkOrderID: wo.ID, StationName: "welding-1", Quantity: 10})
	require.NoError(t, err)
	_, err = svc.CreateDispatch(mes.DispatchSpec{WorkOrderID: wo.ID, StationName: "welding-2", Quantity: 10})
	require.NoError(t, err)

	refreshed, err := svc.GetWorkOrder(wo.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkOrderInProgress, refreshed.Status)
}

func TestCreateDispatchValidation(t *testing.T) {
	svc, _ := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 20})
	require.NoError(t, err)

	_, err = svc.CreateDispatch(mes.DispatchSpec{StationName: "welding-1", Quantity: 10})
	assert.ErrorIs(t, err, mes.ErrValidation)

	_, err = svc.CreateDispatch(mes.DispatchSpec{WorkOrderID: wo.ID, Quantity: 10})
	assert.ErrorIs(t, err, mes.ErrValidation)

	_, err = svc.CreateDispatch(mes.DispatchSpec{WorkOrderID: wo.ID, StationName: "welding-1"})
	assert.ErrorIs(t, err, mes.ErrValidation)
}

func TestStartAndCompleteDispatch(t *testing.T) {
	svc, _ := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 20})
	require.NoError(t, err)
	d, err := svc.CreateDispatch(mes.DispatchSpec{WorkOrderID: wo.ID, StationName: "welding-1", Quantity: 20})
	require.NoError(t, err)

	started, err := svc.StartDispatch(d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DispatchInProgress, started.Status)
	assert.NotNil(t, started.ActualStartAt)

	done, err := svc.CompleteDispatch(d.ID)
	require.NoError(t, err)
	assert.NotNil(t, done.ActualEndAt)
	// Completion status comes from reported quantities, not the call.
	assert.Equal(t, models.DispatchInProgress, done.Status)
}

func TestDeleteDispatchHidesFromList(t *testing.T) {
	svc, _ := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 20})
	require.NoError(t, err)
	d, err := svc.CreateDispatch(mes.DispatchSpec{WorkOrderID: wo.ID, StationName: "welding-1", Quantity: 20})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDispatch(d.ID))
	dispatches, err := svc.ListDispatches()
	require.NoError(t, err)
	assert.Empty(t, dispatches)
}
