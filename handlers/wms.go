package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"smai.tw/mes/config"
	"smai.tw/mes/middleware"
	"smai.tw/mes/models"
	"smai.tw/mes/pkg/wms"
)

func GetAllLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := wmsService.ListLocations()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

func CreateLocation(w http.ResponseWriter, r *http.Request) {
	var loc models.WmsLocation
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if loc.Code == "" {
		http.Error(w, "code is required", http.StatusBadRequest)
		return
	}
	loc.IsActive = true
	if err := config.DB.Create(&loc).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, loc)
}

func UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var loc models.WmsLocation
	if err := config.DB.First(&loc, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := config.DB.Save(&loc).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, loc)
}

func DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result := config.DB.Model(&models.WmsLocation{}).
		Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		http.Error(w, "db error: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func GetAllInventory(w http.ResponseWriter, r *http.Request) {
	items, err := wmsService.ListItems()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func GetInventorySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := wmsService.Summary()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func GetAllMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := wmsService.ListMovements()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, movements)
}

func InboundInventory(w http.ResponseWriter, r *http.Request) {
	var spec wms.InboundSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if spec.OperatorName == "" {
		spec.OperatorName = middleware.GetOperatorName(r)
	}
	item, err := wmsService.Inbound(spec)
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "inbound", "inventory", item.ID.String(), item.Barcode, spec)
	dashboardCache.Invalidate()
	respondJSON(w, http.StatusCreated, item)
}

func OutboundInventory(w http.ResponseWriter, r *http.Request) {
	var spec wms.OutboundSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if spec.OperatorName == "" {
		spec.OperatorName = middleware.GetOperatorName(r)
	}
	if err := wmsService.Outbound(spec); err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "outbound", "inventory", spec.InventoryID.String(), "", spec)
	dashboardCache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func TransferInventory(w http.ResponseWriter, r *http.Request) {
	var spec wms.TransferSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if spec.OperatorName == "" {
		spec.OperatorName = middleware.GetOperatorName(r)
	}
	if err := wmsService.Transfer(spec); err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "transfer", "inventory", spec.InventoryID.String(), spec.ToLocation, spec)
	dashboardCache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func CreateStockTake(w http.ResponseWriter, r *http.Request) {
	var spec wms.StockTakeSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if spec.OperatorName == "" {
		spec.OperatorName = middleware.GetOperatorName(r)
	}
	session, err := wmsService.CreateStockTake(spec)
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "create", "stocktake", session.ID.String(), session.StockTakeNumber, spec)
	dashboardCache.Invalidate()
	respondJSON(w, http.StatusCreated, session)
}

func GetAllStockTakes(w http.ResponseWriter, r *http.Request) {
	sessions, err := wmsService.ListStockTakes()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sessions)
}

func GetStockTakeDetails(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	details, err := wmsService.ListStockTakeDetails(number)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

func GetInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	item, err := wmsService.GetItem(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}
