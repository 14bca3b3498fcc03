package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"smai.tw/mes/config"
	"smai.tw/mes/pkg/mes"
	"smai.tw/mes/pkg/wms"
	"smai.tw/mes/store"
)

var (
	mesService *mes.Service
	wmsService *wms.Service
)

// Init wires the services to the connected database. Must run after
// config.Connect.
func Init() {
	mesService = mes.NewService(store.NewMES(config.DB), log.Logger)
	wmsService = wms.NewService(store.NewWMS(config.DB), log.Logger)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps service sentinels onto HTTP statuses and emits a
// uniform error body.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, mes.ErrNotFound), errors.Is(err, wms.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, mes.ErrValidation), errors.Is(err, wms.ErrValidation),
		errors.Is(err, mes.ErrReworkLimitExceeded):
		status = http.StatusBadRequest
	case errors.Is(err, mes.ErrVersionConflict), errors.Is(err, wms.ErrVersionConflict):
		status = http.StatusConflict
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
