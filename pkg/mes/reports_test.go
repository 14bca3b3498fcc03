package mes_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/mes"
)

func TestReportCascade(t *testing.T) {
	svc, _ := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 36})
	require.NoError(t, err)

	dispatchA, err := svc.CreateDispatch(mes.DispatchSpec{
		WorkOrderID: wo.ID, StationName: "welding-1", Quantity: 18,
	})
	require.NoError(t, err)
	dispatchB, err := svc.CreateDispatch(mes.DispatchSpec{
		WorkOrderID: wo.ID, StationName: "welding-2", Quantity: 18,
	})
	require.NoError(t, err)

	// Station A finishes its 18 units with two rejects.
	_, err = svc.CreateReport(mes.ReportSpec{DispatchID: dispatchA.ID, GoodQty: 16, NgQty: 2})
	require.NoError(t, err)

	refreshedA, err := svc.GetDispatch(dispatchA.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DispatchCompleted, refreshedA.Status)
	assert.Equal(t, 18, refreshedA.CompletedQty)
	assert.Equal(t, 16, refreshedA.GoodQty)
	assert.Equal(t, 2, refreshedA.NgQty)

	refreshedWO, err := svc.GetWorkOrder(wo.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkOrderInProgress, refreshedWO.Status)
	assert.Equal(t, 18, refreshedWO.CompletedQty)

	// Station B finishes clean; the order completes.
	_, err = svc.CreateReport(mes.ReportSpec{DispatchID: dispatchB.ID, GoodQty: 18, NgQty: 0})
	require.NoError(t, err)

	refreshedWO, err = svc.GetWorkOrder(wo.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkOrderCompleted, refreshedWO.Status)
	assert.Equal(t, 36, refreshedWO.CompletedQty)
	assert.Equal(t, 34, refreshedWO.GoodQty)
	assert.Equal(t, 2, refreshedWO.NgQty)
}

func TestReportCascadeRecomputesFromEvents(t *testing.T) {
	svc, _ := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 30})
	require.NoError(t, err)
	dispatch, err := svc.CreateDispatch(mes.DispatchSpec{
		WorkOrderID: wo.ID, StationName: "welding-1", Quantity: 30,
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.CreateReport(mes.ReportSpec{DispatchID: dispatch.ID, GoodQty: 9, NgQty: 1})
		require.NoError(t, err)
	}

	refreshed, err := svc.GetDispatch(dispatch.ID)
	require.NoError(t, err)
	assert.Equal(t, 27, refreshed.GoodQty)
	assert.Equal(t, 3, refreshed.NgQty)
	assert.Equal(t, 30, refreshed.CompletedQty)
	assert.Equal(t, models.DispatchCompleted, refreshed.Status)
}

func TestCreateReportValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateReport(mes.ReportSpec{GoodQty: 1})
	assert.ErrorIs(t, err, mes.ErrValidation)

	_, err = svc.CreateReport(mes.ReportSpec{DispatchID: uuid.New(), GoodQty: -1})
	assert.ErrorIs(t, err, mes.ErrValidation)

	_, err = svc.CreateReport(mes.ReportSpec{DispatchID: uuid.New()})
	assert.ErrorIs(t, err, mes.ErrValidation)

	_, err = svc.CreateReport(mes.ReportSpec{DispatchID: uuid.New(), GoodQty: 1})
	assert.ErrorIs(t, err, mes.ErrNotFound)
}

func TestReportInheritsDispatchContext(t *testing.T) {
	svc, store := newTestService(t)

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 10})
	require.NoError(t, err)
	dispatch, err := svc.CreateDispatch(mes.DispatchSpec{
		WorkOrderID: wo.ID, StationName: "welding-1", Quantity: 10,
	})
	require.NoError(t, err)

	report, err := svc.CreateReport(mes.ReportSpec{DispatchID: dispatch.ID, GoodQty: 5})
	require.NoError(t, err)
	assert.Equal(t, wo.ID, report.WorkOrderID)
	assert.Equal(t, "welding-1", report.StationName)
	assert.Equal(t, 5, report.Quantity)

	reports, err := store.ListReportsByWorkOrder(wo.ID)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}
