package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"smai.tw/mes/config"
	"smai.tw/mes/middleware"
	"smai.tw/mes/models"
)

func GetAllR0Labels(w http.ResponseWriter, r *http.Request) {
	var labels []models.R0Label
	if err := config.DB.Order("updated_at DESC").Find(&labels).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, labels)
}

func GetR0LabelByCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var label models.R0Label
	if err := config.DB.First(&label, "r0_code = ?", code).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, label)
}

// SyncR0Label upserts a label by its R0 code. Handheld readers push their
// local state through this endpoint; an unknown code creates the row.
func SyncR0Label(w http.ResponseWriter, r *http.Request) {
	var incoming models.R0Label
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if incoming.R0Code == "" {
		http.Error(w, "r0Code is required", http.StatusBadRequest)
		return
	}

	var label models.R0Label
	err := config.DB.First(&label, "r0_code = ?", incoming.R0Code).Error
	if err != nil {
		if err := config.DB.Create(&incoming).Error; err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, incoming)
		return
	}

	incoming.ID = label.ID
	incoming.CreatedAt = label.CreatedAt
	if err := config.DB.Save(&incoming).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, incoming)
}

type epcChangeRequest struct {
	R0Code      string `json:"r0Code"`
	OldEpc      string `json:"oldEpc"`
	NewEpc      string `json:"newEpc"`
	ChangeType  string `json:"changeType"`
	StationName string `json:"stationName"`
	Notes       string `json:"notes"`
}

// ChangeEpc replaces a label's RFID code. The change is recorded twice:
// as a standalone EpcHistory row for lookup by either code, and appended
// to the label's own history array.
func ChangeEpc(w http.ResponseWriter, r *http.Request) {
	var req epcChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.R0Code == "" || req.NewEpc == "" {
		http.Error(w, "r0Code and newEpc are required", http.StatusBadRequest)
		return
	}
	if req.ChangeType == "" {
		req.ChangeType = "regeneration"
	}
	operatorName := middleware.GetOperatorName(r)

	var label models.R0Label
	if err := config.DB.First(&label, "r0_code = ?", req.R0Code).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	oldEpc := req.OldEpc
	if oldEpc == "" {
		oldEpc = label.CurrentEpc
	}

	history := models.EpcHistory{
		WorkOrderID:  label.WorkOrderID,
		OrderNumber:  label.OrderNumber,
		ProductModel: label.ProductModel,
		OldEpc:       oldEpc,
		NewEpc:       req.NewEpc,
		ChangeType:   req.ChangeType,
		StationName:  req.StationName,
		OperatorName: operatorName,
		Notes:        req.Notes,
	}

	label.CurrentEpc = req.NewEpc
	label.RegenerationCount++
	label.History = append(label.History, models.LabelHistoryEntry{
		Epc:          req.NewEpc,
		ChangeType:   req.ChangeType,
		StationName:  req.StationName,
		OperatorName: operatorName,
		ChangedAt:    time.Now(),
	})

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&history).Error; err != nil {
			return err
		}
		return tx.Save(&label).Error
	})
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeAudit(r, "epc_change", "label", label.ID.String(), label.R0Code, req)
	respondJSON(w, http.StatusOK, label)
}

// CheckEpc resolves an RFID code to its label, looking at current codes
// first and the replacement history second.
func CheckEpc(w http.ResponseWriter, r *http.Request) {
	epc := mux.Vars(r)["epc"]

	var label models.R0Label
	if err := config.DB.First(&label, "current_epc = ?", epc).Error; err == nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"found": true, "current": true, "label": label,
		})
		return
	}

	var history models.EpcHistory
	if err := config.DB.Where("old_epc = ? OR new_epc = ?", epc, epc).
		Order("created_at DESC").First(&history).Error; err == nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"found": true, "current": false, "history": history,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"found": false})
}

func GetEpcHistory(w http.ResponseWriter, r *http.Request) {
	var history []models.EpcHistory
	query := config.DB.Order("created_at DESC")
	if epc := r.URL.Query().Get("epc"); epc != "" {
		query = query.Where("old_epc = ? OR new_epc = ?", epc, epc)
	}
	if err := query.Find(&history).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, history)
}
