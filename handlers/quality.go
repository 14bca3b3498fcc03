package handlers

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"smai.tw/mes/middleware"
	"smai.tw/mes/pkg/mes"
)

func GetAllOutgassingTests(w http.ResponseWriter, r *http.Request) {
	tests, err := mesService.ListOutgassingTests()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tests)
}

func GetOutgassingTestsByWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	tests, err := mesService.ListOutgassingTestsByWorkOrder(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tests)
}

func CreateOutgassingTest(w http.ResponseWriter, r *http.Request) {
	var spec mes.OutgassingTestSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if spec.OperatorName == "" {
		spec.OperatorName = middleware.GetOperatorName(r)
	}
	test, err := mesService.CreateOutgassingTest(spec)
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "create", "outgassing", test.ID.String(), test.TestNumber, spec)
	respondJSON(w, http.StatusCreated, test)
}

// GetOutgassingSampleInfo returns the sampling plan and tally for one
// work order.
func GetOutgassingSampleInfo(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	summary, err := mesService.OutgassingSampleInfo(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func GetAllAoiInspections(w http.ResponseWriter, r *http.Request) {
	inspections, err := mesService.ListAoiInspections()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inspections)
}

func GetAoiInspectionsByWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	inspections, err := mesService.ListAoiInspectionsByWorkOrder(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inspections)
}

type aoiImportRequest struct {
	WorkOrderID uuid.UUID           `json:"workOrderId"`
	Rows        []map[string]string `json:"rows"`
}

// ImportAoiInspections ingests pre-parsed AOI rows from the client.
func ImportAoiInspections(w http.ResponseWriter, r *http.Request) {
	var req aoiImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.WorkOrderID == uuid.Nil {
		http.Error(w, "workOrderId is required", http.StatusBadRequest)
		return
	}
	summary, err := mesService.ImportAoiRows(req.WorkOrderID, req.Rows, middleware.GetOperatorName(r))
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "import", "aoi", req.WorkOrderID.String(), summary.ImportBatch, summary)
	respondJSON(w, http.StatusOK, summary)
}

// ImportAoiFile ingests a raw AOI export file (csv or xlsx) uploaded as
// multipart form data. The original file is archived before parsing so a
// disputed import can be replayed.
func ImportAoiFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	workOrderID, err := uuid.Parse(r.FormValue("workOrderId"))
	if err != nil {
		http.Error(w, "invalid workOrderId", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	archiveURL, err := archiveImportFile(r.Context(), file, header.Filename)
	if err != nil {
		log.Warn().Err(err).Str("filename", header.Filename).Msg("import file archive failed")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		http.Error(w, "failed to rewind upload: "+err.Error(), http.StatusInternalServerError)
		return
	}

	rows, err := parseAoiFile(file, header)
	if err != nil {
		http.Error(w, "failed to parse file: "+err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := mesService.ImportAoiRows(workOrderID, rows, middleware.GetOperatorName(r))
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "import", "aoi", workOrderID.String(), summary.ImportBatch, summary)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"summary":    summary,
		"archiveUrl": archiveURL,
	})
}

// parseAoiFile reads the upload into header-keyed rows. xlsx goes through
// excelize; everything else is treated as CSV.
func parseAoiFile(file multipart.File, header *multipart.FileHeader) ([]map[string]string, error) {
	if strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		return parseAoiXlsx(file)
	}
	return parseAoiCsv(file)
}

func parseAoiCsv(file io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return recordsToRows(records), nil
}

func parseAoiXlsx(file io.Reader) ([]map[string]string, error) {
	book, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	records, err := book.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return recordsToRows(records), nil
}

// recordsToRows turns a header row plus data rows into keyed maps. Short
// rows are padded with empty strings; extra cells are dropped.
func recordsToRows(records [][]string) []map[string]string {
	if len(records) < 2 {
		return nil
	}
	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, key := range headers {
			if i < len(record) {
				row[strings.TrimSpace(key)] = record[i]
			} else {
				row[strings.TrimSpace(key)] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
