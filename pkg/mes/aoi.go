package mes

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"smai.tw/mes/models"
)

// The AOI tool exports CSV with native column headers. Some firmware
// versions additionally concatenate every column into the first field, so
// a row arrives as {"日期": "2025/08/12, M01, WO-..., BC-001, ..."}.
// aggregateAoiRows recognizes that encoding and splits it back out before
// field-based parsing.
const (
	aoiColDate   = "日期"
	aoiColSerial = "序號"
	aoiColResult = "辨識結果"
)

// Column order of the concatenated encoding:
// date, measureId, orderNumber, serialNumber, recipe, direction,
// posX, posY, width, height, result, path, user.
const aoiConcatMinFields = 11

// aoiDefectGroup accumulates the rows seen for one serial.
type aoiDefectGroup struct {
	serial      string
	defectCount int
	positions   []models.DefectPosition
}

// resultIsDefect reports whether the tool's verdict counts as a defect.
// Matching is case-insensitive.
func resultIsDefect(result string) bool {
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "damage", "ng", "fail":
		return true
	}
	return false
}

// splitConcatenatedRow undoes the all-in-first-column encoding. Returns
// the row unchanged when it is not in that shape.
func splitConcatenatedRow(row map[string]string) map[string]string {
	packed, ok := row[aoiColDate]
	if !ok || !strings.Contains(packed, ",") {
		return row
	}
	parts := strings.Split(packed, ", ")
	if len(parts) < aoiConcatMinFields {
		return row
	}
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	return map[string]string{
		"date":         get(0),
		"measureId":    get(1),
		"orderNumber":  get(2),
		"serialNumber": get(3),
		"recipe":       get(4),
		"direction":    get(5),
		"posX":         get(6),
		"posY":         get(7),
		"width":        get(8),
		"height":       get(9),
		"result":       get(10),
		"path":         get(11),
		"user":         get(12),
	}
}

// rowSerial resolves the per-unit serial, trying the English key, the
// tool's native header, and the RFID aliases. Empty means unresolvable.
func rowSerial(row map[string]string) string {
	for _, key := range []string{"serialNumber", aoiColSerial, "rfidCode", "RFID"} {
		if v := strings.TrimSpace(row[key]); v != "" {
			return v
		}
	}
	return ""
}

func rowResult(row map[string]string) string {
	if v := row["result"]; v != "" {
		return v
	}
	return row[aoiColResult]
}

// aggregateAoiRows reduces raw inspection rows to one group per distinct
// serial, in first-seen order. Rows without a resolvable serial are
// tool noise and are skipped.
func aggregateAoiRows(rows []map[string]string) []*aoiDefectGroup {
	groups := make(map[string]*aoiDefectGroup)
	var order []*aoiDefectGroup

	for _, raw := range rows {
		row := splitConcatenatedRow(raw)
		serial := rowSerial(row)
		if serial == "" {
			continue
		}

		g, ok := groups[serial]
		if !ok {
			g = &aoiDefectGroup{serial: serial}
			groups[serial] = g
			order = append(order, g)
		}
		if resultIsDefect(rowResult(row)) {
			g.defectCount++
			g.positions = append(g.positions, models.DefectPosition{
				X: firstNonEmpty(row["posX"], row["Position_X"]),
				Y: firstNonEmpty(row["posY"], row["Position_Y"]),
			})
		}
	}
	return order
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ImportDetail reports the outcome for one serial in an import.
type ImportDetail struct {
	Row         int       `json:"row"`
	Serial      string    `json:"serial"`
	Success     bool      `json:"success"`
	ID          uuid.UUID `json:"id,omitempty"`
	DefectCount int       `json:"defectCount"`
	Error       string    `json:"error,omitempty"`
}

// ImportSummary is the result of one AOI import batch.
type ImportSummary struct {
	ImportBatch   string         `json:"importBatch"`
	TotalRows     int            `json:"totalRows"`
	UniqueSerials int            `json:"uniqueSerials"`
	Success       int            `json:"success"`
	Failed        int            `json:"failed"`
	Details       []ImportDetail `json:"details"`
}

// ListAoiInspections returns all inspection records, newest first.
func (s *Service) ListAoiInspections() ([]models.AoiInspection, error) {
	return s.store.ListAoiInspections()
}

// ListAoiInspectionsByWorkOrder returns the inspection records of one order.
func (s *Service) ListAoiInspectionsByWorkOrder(workOrderID uuid.UUID) ([]models.AoiInspection, error) {
	return s.store.ListAoiInspectionsByWorkOrder(workOrderID)
}

// ImportAoiRows turns a raw AOI export into exactly one inspection record
// per distinct serial: NG when any row for the serial was a defect, PASS
// otherwise. All records of one import share an import-batch id. A record
// that fails to persist is reported in the summary; the rest of the batch
// still goes through.
func (s *Service) ImportAoiRows(workOrderID uuid.UUID, rows []map[string]string, operatorName string) (*ImportSummary, error) {
	wo, err := s.store.GetWorkOrder(workOrderID)
	if err != nil {
		return nil, err
	}

	importBatch := uuid.NewString()
	groups := aggregateAoiRows(rows)
	summary := &ImportSummary{
		ImportBatch:   importBatch,
		TotalRows:     len(rows),
		UniqueSerials: len(groups),
		Details:       make([]ImportDetail, 0, len(groups)),
	}

	for i, g := range groups {
		inspection := &models.AoiInspection{
			InspectionNumber: models.NewDocumentNumber(models.PrefixAoi),
			WorkOrderID:      wo.ID,
			OrderNumber:      wo.OrderNumber,
			ProductModel:     wo.ProductModel,
			RfidCode:         g.serial,
			Result:           models.InspectionPass,
			DefectCount:      g.defectCount,
			DefectPositions:  g.positions,
			OperatorName:     operatorName,
			InspectedAt:      models.JSONTime(time.Now()),
			ImportBatch:      importBatch,
		}
		if g.defectCount > 0 {
			inspection.Result = models.InspectionNG
			inspection.DefectType = "damage"
		}

		detail := ImportDetail{Row: i + 1, Serial: g.serial, DefectCount: g.defectCount}
		if err := s.store.InsertAoiInspection(inspection); err != nil {
			detail.Error = err.Error()
			summary.Failed++
			s.log.Warn().Str("serial", g.serial).Err(err).Msg("aoi inspection insert failed")
		} else {
			detail.Success = true
			detail.ID = inspection.ID
			summary.Success++
		}
		summary.Details = append(summary.Details, detail)
	}

	s.log.Info().Str("importBatch", importBatch).Int("rows", summary.TotalRows).
		Int("serials", summary.UniqueSerials).Int("failed", summary.Failed).
		Msg("aoi import finished")
	return summary, nil
}
