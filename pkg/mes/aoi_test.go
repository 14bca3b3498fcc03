package mes_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/mes"
	"smai.tw/mes/store/memstore"
)

func newTestService(t *testing.T) (*mes.Service, *memstore.MES) {
	t.Helper()
	store := memstore.NewMES()
	return mes.NewService(store, zerolog.Nop()), store
}

func TestImportAoiRowsAggregatesBySerial(t *testing.T) {
	svc, store := newTestService(t)
	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 100})
	require.NoError(t, err)

	rows := []map[string]string{
		{"serialNumber": "SN-001", "result": "OK"},
		{"serialNumber": "SN-001", "result": "Damage", "posX": "12.5", "posY": "30.1"},
		{"serialNumber": "SN-002", "result": "OK"},
	}

	summary, err := svc.ImportAoiRows(wo.ID, rows, "inspector")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 2, summary.UniqueSerials)
	assert.Equal(t, 2, summary.Success)
	assert.Equal(t, 0, summary.Failed)

	inspections, err := store.ListAoiInspectionsByWorkOrder(wo.ID)
	require.NoError(t, err)
	require.Len(t, inspections, 2)

	bySerial := map[string]models.AoiInspection{}
	for _, ins := range inspections {
		bySerial[ins.RfidCode] = ins
	}
	ng := bySerial["SN-001"]
	assert.Equal(t, models.InspectionNG, ng.Result)
	assert.Equal(t, 1, ng.DefectCount)
	assert.Equal(t, "damage", ng.DefectType)
	require.Len(t, ng.DefectPositions, 1)
	assert.Equal(t, "12.5", ng.DefectPositions[0].X)

	pass := bySerial["SN-002"]
	assert.Equal(t, models.InspectionPass, pass.Result)
	assert.Equal(t, 0, pass.DefectCount)
}

func TestImportAoiRowsConcatenatedEncoding(t *testing.T) {
	svc, store := newTestService(t)
	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 50})
	require.NoError(t, err)

	// Some tool firmware packs every column into the first field.
	rows := []map[string]string{
		{"日期": "2025/08/12, M01, WO-20250801-001, SN-100, R1, front, 12.5, 30.1, 0.4, 0.6, Damage, img/1.jpg, lin"},
	}

	summary, err := svc.ImportAoiRows(wo.ID, rows, "inspector")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.UniqueSerials)

	inspections, err := store.ListAoiInspectionsByWorkOrder(wo.ID)
	require.NoError(t, err)
	require.Len(t, inspections, 1)
	assert.Equal(t, "SN-100", inspections[0].RfidCode)
	assert.Equal(t, models.InspectionNG, inspections[0].Result)
	assert.Equal(t, 1, inspections[0].DefectCount)
}

func TestImportAoiRowsSkipsSerialLessRows(t *testing.T) {
	svc, _ := newTestService(t)
	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 50})
	require.NoError(t, err)

	rows := []map[string]string{
		{"result": "Damage"},
		{"serialNumber": "SN-200", "result": "ng"},
	}

	summary, err := svc.ImportAoiRows(wo.ID, rows, "inspector")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalRows)
	assert.Equal(t, 1, summary.UniqueSerials)
	assert.Equal(t, 1, summary.Success)
}

func TestImportAoiRowsResultMatching(t *testing.T) {
	svc, store := newTestService(t)
	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 50})
	require.NoError(t, err)

	rows := []map[string]string{
		{"serialNumber": "SN-1", "result": "DAMAGE"},
		{"serialNumber": "SN-2", "result": "Fail"},
		{"serialNumber": "SN-3", "result": "ng"},
		{"serialNumber": "SN-4", "result": "Pass"},
	}
	_, err = svc.ImportAoiRows(wo.ID, rows, "inspector")
	require.NoError(t, err)

	inspections, err := store.ListAoiInspectionsByWorkOrder(wo.ID)
	require.NoError(t, err)
	ngCount := 0
	for _, ins := range inspections {
		if ins.Result == models.InspectionNG {
			ngCount++
		}
	}
	assert.Equal(t, 3, ngCount)
}

func TestImportAoiRowsUnknownWorkOrder(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.ImportAoiRows(uuid.New(), nil, "inspector")
	assert.ErrorIs(t, err, mes.ErrNotFound)
}
