package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"smai.tw/mes/middleware"
	"smai.tw/mes/pkg/mes"
)

func GetAllWorkOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := mesService.ListWorkOrders()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func CreateWorkOrder(w http.ResponseWriter, r *http.Request) {
	var spec mes.WorkOrderSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	wo, err := mesService.CreateWorkOrder(spec)
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "create", "workorder", wo.ID.String(), wo.OrderNumber, spec)
	dashboardCache.Invalidate()
	respondJSON(w, http.StatusCreated, wo)
}

func GetWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	wo, err := mesService.GetWorkOrder(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, wo)
}

func UpdateWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var patch mes.WorkOrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	wo, err := mesService.UpdateWorkOrder(id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "update", "workorder", wo.ID.String(), wo.OrderNumber, patch)
	dashboardCache.Invalidate()
	respondJSON(w, http.StatusOK, wo)
}

func DeleteWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := mesService.DeleteWorkOrder(id); err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "delete", "workorder", id.String(), middleware.GetOperatorName(r), nil)
	dashboardCache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}
