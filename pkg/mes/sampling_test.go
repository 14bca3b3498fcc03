package mes_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smai.tw/mes/models"
	"smai.tw/mes/pkg/mes"
	"smai.tw/mes/store/memstore"
)

func TestPlanSampling(t *testing.T) {
	tests := []struct {
		name        string
		targetQty   int
		testedCount int
		required    int
		batchStart  int
		batchEnd    int
		complete    bool
	}{
		{"fresh order of 36", 36, 0, 2, 1, 18, false},
		{"second sample of 36", 36, 1, 2, 19, 36, false},
		{"order of 36 fully sampled", 36, 2, 2, 37, 36, true},
		{"single unit order", 1, 0, 1, 1, 1, false},
		{"partial last batch", 100, 5, 6, 91, 100, false},
		{"exactly one batch", 18, 0, 1, 1, 18, false},
		{"just over one batch", 19, 1, 2, 19, 19, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := mes.PlanSampling(tt.targetQty, tt.testedCount)
			assert.Equal(t, tt.required, plan.RequiredSamples)
			assert.Equal(t, tt.batchStart, plan.NextBatchStart)
			assert.Equal(t, tt.batchEnd, plan.NextBatchEnd)
			assert.Equal(t, tt.complete, plan.IsComplete)
			assert.Equal(t, tt.testedCount+1, plan.NextSampleIndex)
		})
	}
}

func TestOutgassingSampleInfo(t *testing.T) {
	store := memstore.NewMES()
	svc := mes.NewService(store, zerolog.Nop())

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{ProductModel: "HT-6500", Quantity: 36})
	require.NoError(t, err)

	_, err = svc.CreateOutgassingTest(mes.OutgassingTestSpec{
		WorkOrderID: wo.ID,
		Result:      models.InspectionPass,
		RfidCode:    "EPC-0001",
	})
	require.NoError(t, err)

	summary, err := svc.OutgassingSampleInfo(wo.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.RequiredSamples)
	assert.Equal(t, 1, summary.TestedCount)
	assert.Equal(t, 19, summary.NextBatchStart)
	assert.Equal(t, 36, summary.NextBatchEnd)
	assert.False(t, summary.IsComplete)
	assert.Equal(t, 1, summary.PassCount)
	assert.Equal(t, 100, summary.PassRate)
}

func TestCreateOutgassingTestEnrichesFromWorkOrder(t *testing.T) {
	store := memstore.NewMES()
	svc := mes.NewService(store, zerolog.Nop())

	wo, err := svc.CreateWorkOrder(mes.WorkOrderSpec{
		OrderNumber:  "WO-20250801-001",
		ProductModel: "HT-6500",
		Quantity:     18,
	})
	require.NoError(t, err)

	test, err := svc.CreateOutgassingTest(mes.OutgassingTestSpec{
		WorkOrderID: wo.ID,
		Result:      models.InspectionNG,
	})
	require.NoError(t, err)
	assert.Equal(t, "WO-20250801-001", test.OrderNumber)
	assert.Equal(t, "HT-6500", test.ProductModel)
	assert.NotEmpty(t, test.TestNumber)
}
