package handlers

import (
	"net/http"
	"time"

	"smai.tw/mes/models"
	"smai.tw/mes/utils"
)

// dashboardSnapshot is the one-shot payload tablet clients poll for.
type dashboardSnapshot struct {
	WorkOrders  []models.WorkOrder     `json:"workOrders"`
	Dispatches  []models.Dispatch      `json:"dispatches"`
	Reports     []models.Report        `json:"reports"`
	Inventory   []models.InventoryItem `json:"inventory"`
	GeneratedAt time.Time              `json:"generatedAt"`
}

// Snapshots are served from cache for five minutes. The cascade always
// reads and writes through the store, never this cache, so a stale
// snapshot can delay a dashboard refresh but never corrupt totals.
var dashboardCache = utils.NewCache[dashboardSnapshot](5 * time.Minute)

// GetDashboard returns the floor dashboard payload, cached.
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	if snapshot, ok := dashboardCache.Get(); ok {
		respondJSON(w, http.StatusOK, snapshot)
		return
	}

	orders, err := mesService.ListWorkOrders()
	if err != nil {
		respondError(w, err)
		return
	}
	dispatches, err := mesService.ListDispatches()
	if err != nil {
		respondError(w, err)
		return
	}
	reports, err := mesService.ListReports()
	if err != nil {
		respondError(w, err)
		return
	}
	inventory, err := wmsService.ListItems()
	if err != nil {
		respondError(w, err)
		return
	}

	snapshot := dashboardSnapshot{
		WorkOrders:  orders,
		Dispatches:  dispatches,
		Reports:     reports,
		Inventory:   inventory,
		GeneratedAt: time.Now(),
	}
	dashboardCache.Put(snapshot)
	respondJSON(w, http.StatusOK, snapshot)
}

// RefreshDashboard drops the cached snapshot.
func RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	dashboardCache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}
