package mes

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"smai.tw/mes/models"
)

// SampleRate is the destructive-test cadence: one sample per 18 units.
const SampleRate = 18

// SamplingPlan is the derived sampling state for a work order. Pure
// function of target quantity and how many tests exist already.
type SamplingPlan struct {
	SampleRate      int  `json:"sampleRate"`
	RequiredSamples int  `json:"requiredSamples"`
	TestedCount     int  `json:"testedCount"`
	NextSampleIndex int  `json:"nextSampleIndex"`
	NextBatchStart  int  `json:"nextBatchStart"`
	NextBatchEnd    int  `json:"nextBatchEnd"`
	IsComplete      bool `json:"isComplete"`
}

// PlanSampling derives the sampling cadence for a target quantity given
// the number of samples already tested.
func PlanSampling(targetQty, testedCount int) SamplingPlan {
	required := (targetQty + SampleRate - 1) / SampleRate
	end := (testedCount + 1) * SampleRate
	if end > targetQty {
		end = targetQty
	}
	return SamplingPlan{
		SampleRate:      SampleRate,
		RequiredSamples: required,
		TestedCount:     testedCount,
		NextSampleIndex: testedCount + 1,
		NextBatchStart:  testedCount*SampleRate + 1,
		NextBatchEnd:    end,
		IsComplete:      testedCount >= required,
	}
}

// SamplingSummary is the plan plus the pass/fail tally over the work
// order's existing tests.
type SamplingSummary struct {
	WorkOrderID  uuid.UUID `json:"workOrderId"`
	OrderNumber  string    `json:"orderNumber"`
	TotalQty     int       `json:"totalQty"`
	CompletedQty int       `json:"completedQty"`
	SamplingPlan
	PassCount int `json:"passCount"`
	FailCount int `json:"failCount"`
	PassRate  int `json:"passRate"` // percent, rounded
}

// OutgassingSampleInfo reports the sampling state for one work order.
func (s *Service) OutgassingSampleInfo(workOrderID uuid.UUID) (*SamplingSummary, error) {
	wo, err := s.store.GetWorkOrder(workOrderID)
	if err != nil {
		return nil, err
	}
	tests, err := s.store.ListOutgassingTestsByWorkOrder(workOrderID)
	if err != nil {
		return nil, err
	}

	summary := &SamplingSummary{
		WorkOrderID:  wo.ID,
		OrderNumber:  wo.OrderNumber,
		TotalQty:     wo.Quantity,
		CompletedQty: wo.CompletedQty,
		SamplingPlan: PlanSampling(wo.Quantity, len(tests)),
	}
	for _, t := range tests {
		switch t.Result {
		case models.InspectionPass:
			summary.PassCount++
		case models.InspectionNG:
			summary.FailCount++
		}
	}
	if len(tests) > 0 {
		summary.PassRate = int(float64(summary.PassCount)/float64(len(tests))*100 + 0.5)
	}
	return summary, nil
}

// ListOutgassingTests returns all recorded sample results, newest first.
func (s *Service) ListOutgassingTests() ([]models.OutgassingTest, error) {
	return s.store.ListOutgassingTests()
}

// ListOutgassingTestsByWorkOrder returns the sample results of one order.
func (s *Service) ListOutgassingTestsByWorkOrder(workOrderID uuid.UUID) ([]models.OutgassingTest, error) {
	return s.store.ListOutgassingTestsByWorkOrder(workOrderID)
}

// OutgassingTestSpec is the client payload for one destructive test.
type OutgassingTestSpec struct {
	TestNumber   string           `json:"testNumber"`
	WorkOrderID  uuid.UUID        `json:"workOrderId"`
	BatchNumber  string           `json:"batchNumber"`
	BatchSize    int              `json:"batchSize"`
	SampleIndex  int              `json:"sampleIndex"`
	RfidCode     string           `json:"rfidCode"`
	Result       string           `json:"result"`
	TestValue    float64          `json:"testValue"`
	Threshold    float64          `json:"threshold"`
	OperatorName string           `json:"operatorName"`
	TestedAt     *models.JSONTime `json:"testedAt"`
	Notes        string           `json:"notes"`
	Signature    string           `json:"signature"`
}

// CreateOutgassingTest stores one immutable sample result, enriching the
// order fields from the work order.
func (s *Service) CreateOutgassingTest(spec OutgassingTestSpec) (*models.OutgassingTest, error) {
	if spec.WorkOrderID == uuid.Nil {
		return nil, fmt.Errorf("%w: workOrderId is required", ErrValidation)
	}
	if spec.Result == "" {
		return nil, fmt.Errorf("%w: result is required", ErrValidation)
	}

	test := &models.OutgassingTest{
		TestNumber:   spec.TestNumber,
		WorkOrderID:  spec.WorkOrderID,
		BatchNumber:  spec.BatchNumber,
		BatchSize:    spec.BatchSize,
		SampleIndex:  spec.SampleIndex,
		RfidCode:     spec.RfidCode,
		Result:       spec.Result,
		TestValue:    spec.TestValue,
		Threshold:    spec.Threshold,
		OperatorName: spec.OperatorName,
		Notes:        spec.Notes,
		Signature:    spec.Signature,
	}
	if test.TestNumber == "" {
		test.TestNumber = models.NewDocumentNumber(models.PrefixOutgassing)
	}
	if spec.TestedAt != nil {
		test.TestedAt = *spec.TestedAt
	} else {
		test.TestedAt = models.JSONTime(time.Now())
	}

	wo, err := s.store.GetWorkOrder(spec.WorkOrderID)
	if err != nil {
		return nil, err
	}
	test.OrderNumber = wo.OrderNumber
	test.ProductModel = wo.ProductModel

	if err := s.store.InsertOutgassingTest(test); err != nil {
		return nil, err
	}
	return test, nil
}
