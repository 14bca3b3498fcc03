package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"smai.tw/mes/config"
	"smai.tw/mes/middleware"
	"smai.tw/mes/models"
	"smai.tw/mes/pkg/mes"
)

func GetAllReports(w http.ResponseWriter, r *http.Request) {
	reports, err := mesService.ListReports()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

func CreateReport(w http.ResponseWriter, r *http.Request) {
	var spec mes.ReportSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if spec.OperatorName == "" {
		spec.OperatorName = middleware.GetOperatorName(r)
	}
	report, err := mesService.CreateReport(spec)
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "create", "report", report.ID.String(), report.ReportNumber, spec)
	dashboardCache.Invalidate()
	respondJSON(w, http.StatusCreated, report)
}

func GetReportsByDispatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	reports, err := mesService.ListReportsByDispatch(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

func GetReportsByWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	reports, err := mesService.ListReportsByWorkOrder(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

// CreateNgDetails attaches the NG reason breakdown to a report.
func CreateNgDetails(w http.ResponseWriter, r *http.Request) {
	var details []models.NgDetail
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(details) == 0 {
		http.Error(w, "details must not be empty", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&details).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, details)
}

func GetNgDetailsByReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var details []models.NgDetail
	if err := config.DB.Where("report_id = ?", id).
		Order("created_at ASC").Find(&details).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, details)
}
