package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"smai.tw/mes/pkg/mes"
)

func GetAllDispatches(w http.ResponseWriter, r *http.Request) {
	dispatches, err := mesService.ListDispatches()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dispatches)
}

func CreateDispatch(w http.ResponseWriter, r *http.Request) {
	var spec mes.DispatchSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	d, err := mesService.CreateDispatch(spec)
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "create", "dispatch", d.ID.String(), d.DispatchNumber, spec)
	dashboardCache.Invalidate()
	respondJSON(w, http.StatusCreated, d)
}

func GetDispatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	d, err := mesService.GetDispatch(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func StartDispatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	d, err := mesService.StartDispatch(id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "start", "dispatch", d.ID.String(), d.DispatchNumber, nil)
	dashboardCache.Invalidate()
	respondJSON(w, http.StatusOK, d)
}

func CompleteDispatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	d, err := mesService.CompleteDispatch(id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "complete", "dispatch", d.ID.String(), d.DispatchNumber, nil)
	dashboardCache.Invalidate()
	respondJSON(w, http.StatusOK, d)
}

func DeleteDispatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := mesService.DeleteDispatch(id); err != nil {
		respondError(w, err)
		return
	}
	writeAudit(r, "delete", "dispatch", id.String(), "", nil)
	dashboardCache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}
