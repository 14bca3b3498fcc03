package mes

import (
	"fmt"

	"github.com/google/uuid"

	"smai.tw/mes/models"
)

// ReportSpec is the client payload for one production event.
type ReportSpec struct {
	ReportNumber string           `json:"reportNumber"`
	DispatchID   uuid.UUID        `json:"dispatchId"`
	OperatorName string           `json:"operatorName"`
	StationName  string           `json:"stationName"`
	GoodQty      int              `json:"goodQty"`
	NgQty        int              `json:"ngQty"`
	StartTime    *models.JSONTime `json:"startTime"`
	EndTime      *models.JSONTime `json:"endTime"`
	HasAbnormal  bool             `json:"hasAbnormal"`
	AbnormalType string           `json:"abnormalType"`
}

// CreateReport appends one immutable production event and cascades its
// quantities. The whole cascade runs in a single transaction: the report
// is inserted, then the owning dispatch's totals are recomputed from that
// dispatch's reports and the work order's totals from all of its reports.
// Recomputing from the report log (rather than adding deltas to the stored
// counters) means a lost counter update can never make the totals drift
// from the events that produced them.
func (s *Service) CreateReport(spec ReportSpec) (*models.Report, error) {
	if spec.DispatchID == uuid.Nil {
		return nil, fmt.Errorf("%w: dispatchId is required", ErrValidation)
	}
	if spec.GoodQty < 0 || spec.NgQty < 0 {
		return nil, fmt.Errorf("%w: quantities must not be negative", ErrValidation)
	}
	if spec.GoodQty+spec.NgQty == 0 {
		return nil, fmt.Errorf("%w: report must carry at least one unit", ErrValidation)
	}

	report := &models.Report{
		ReportNumber: spec.ReportNumber,
		DispatchID:   spec.DispatchID,
		OperatorName: spec.OperatorName,
		StationName:  spec.StationName,
		GoodQty:      spec.GoodQty,
		NgQty:        spec.NgQty,
		Quantity:     spec.GoodQty + spec.NgQty,
		StartTime:    spec.StartTime,
		EndTime:      spec.EndTime,
		HasAbnormal:  spec.HasAbnormal,
		AbnormalType: spec.AbnormalType,
	}
	if report.ReportNumber == "" {
		report.ReportNumber = models.NewDocumentNumber(models.PrefixReport)
	}

	err := s.store.Atomically(func(tx Store) error {
		dispatch, err := tx.GetDispatch(spec.DispatchID)
		if err != nil {
			return err
		}
		report.WorkOrderID = dispatch.WorkOrderID
		if report.StationName == "" {
			report.StationName = dispatch.StationName
		}
		if err := tx.InsertReport(report); err != nil {
			return err
		}

		good, ng, err := sumReports(tx.ListReportsByDispatch(dispatch.ID))
		if err != nil {
			return err
		}
		dispatch.GoodQty = good
		dispatch.NgQty = ng
		dispatch.CompletedQty = good + ng
		if dispatch.CompletedQty >= dispatch.Quantity {
			dispatch.Status = models.DispatchCompleted
		} else {
			dispatch.Status = models.DispatchInProgress
		}
		if err := tx.UpdateDispatch(dispatch); err != nil {
			return err
		}

		wo, err := tx.GetWorkOrder(dispatch.WorkOrderID)
		if err != nil {
			return err
		}
		good, ng, err = sumReports(tx.ListReportsByWorkOrder(wo.ID))
		if err != nil {
			return err
		}
		wo.GoodQty = good
		wo.NgQty = ng
		wo.CompletedQty = good + ng
		if wo.CompletedQty >= wo.Quantity {
			wo.Status = models.WorkOrderCompleted
		}
		return tx.UpdateWorkOrder(wo)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("reportNumber", report.ReportNumber).
		Int("goodQty", report.GoodQty).Int("ngQty", report.NgQty).
		Bool("hasAbnormal", report.HasAbnormal).Msg("report recorded")
	return report, nil
}

// ListReports returns all reports, newest first per store ordering.
func (s *Service) ListReports() ([]models.Report, error) {
	return s.store.ListReports()
}

// ListReportsByDispatch returns one dispatch's reports in event order.
func (s *Service) ListReportsByDispatch(dispatchID uuid.UUID) ([]models.Report, error) {
	return s.store.ListReportsByDispatch(dispatchID)
}

// ListReportsByWorkOrder returns one work order's reports in event order.
func (s *Service) ListReportsByWorkOrder(workOrderID uuid.UUID) ([]models.Report, error) {
	return s.store.ListReportsByWorkOrder(workOrderID)
}

func sumReports(reports []models.Report, err error) (good, ng int, _ error) {
	if err != nil {
		return 0, 0, err
	}
	for _, r := range reports {
		good += r.GoodQty
		ng += r.NgQty
	}
	return good, ng, nil
}
