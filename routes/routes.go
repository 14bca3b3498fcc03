package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"smai.tw/mes/handlers"
	"smai.tw/mes/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.HandleFunc("/healthz", handleHealth).Methods("GET")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.SecurityMiddleware)
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.Profile).Methods("GET")
	api.HandleFunc("/change-pin", handlers.ChangePin).Methods("POST")

	registerProductionRoutes(api)
	registerQualityRoutes(api)
	registerWarehouseRoutes(api)
	registerLabelRoutes(api)
	registerScheduleRoutes(api)

	// Dashboard snapshot
	api.HandleFunc("/dashboard", handlers.GetDashboard).Methods("GET")
	api.HandleFunc("/dashboard/refresh", handlers.RefreshDashboard).Methods("POST")

	// Excel exports
	api.HandleFunc("/export/workorders", handlers.ExportWorkOrdersToExcel).Methods("GET")
	api.HandleFunc("/export/workorders/{id}/reports", handlers.ExportWorkOrderReportsToExcel).Methods("GET")

	// =====================================================
	// Admin Routes (masters and audit)
	// =====================================================
	admin := api.PathPrefix("/admin").Subrouter()
	registerAdminRoutes(admin)

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// registerProductionRoutes registers the work order, dispatch and report
// endpoints.
func registerProductionRoutes(api *mux.Router) {
	registerCRUDRoutes(api, "/workorders", crudHandlers{
		getAll: handlers.GetAllWorkOrders,
		create: handlers.CreateWorkOrder,
		getOne: handlers.GetWorkOrder,
		update: handlers.UpdateWorkOrder,
		delete: handlers.DeleteWorkOrder,
	})
	api.HandleFunc("/workorders/{id}/reports", handlers.GetReportsByWorkOrder).Methods("GET")

	registerCRUDRoutes(api, "/dispatches", crudHandlers{
		getAll: handlers.GetAllDispatches,
		create: handlers.CreateDispatch,
		getOne: handlers.GetDispatch,
		delete: handlers.DeleteDispatch,
	})
	api.HandleFunc("/dispatches/{id}/start", handlers.StartDispatch).Methods("POST")
	api.HandleFunc("/dispatches/{id}/complete", handlers.CompleteDispatch).Methods("POST")
	api.HandleFunc("/dispatches/{id}/reports", handlers.GetReportsByDispatch).Methods("GET")

	api.HandleFunc("/reports", handlers.GetAllReports).Methods("GET")
	api.HandleFunc("/reports", handlers.CreateReport).Methods("POST")
	api.HandleFunc("/reports/{id}/ngdetails", handlers.GetNgDetailsByReport).Methods("GET")
	api.HandleFunc("/ngdetails", handlers.CreateNgDetails).Methods("POST")

	// Floor clients need the reason catalog when filling reports.
	api.HandleFunc("/ngreasons", handlers.GetAllNgReasons).Methods("GET")
}

// registerQualityRoutes registers outgassing and AOI endpoints.
func registerQualityRoutes(api *mux.Router) {
	api.HandleFunc("/outgassing", handlers.GetAllOutgassingTests).Methods("GET")
	api.HandleFunc("/outgassing", handlers.CreateOutgassingTest).Methods("POST")
	api.HandleFunc("/workorders/{id}/outgassing", handlers.GetOutgassingTestsByWorkOrder).Methods("GET")
	api.HandleFunc("/workorders/{id}/sampling", handlers.GetOutgassingSampleInfo).Methods("GET")

	api.HandleFunc("/aoi", handlers.GetAllAoiInspections).Methods("GET")
	api.HandleFunc("/aoi/import", handlers.ImportAoiInspections).Methods("POST")
	api.HandleFunc("/aoi/import/file", handlers.ImportAoiFile).Methods("POST")
	api.HandleFunc("/workorders/{id}/aoi", handlers.GetAoiInspectionsByWorkOrder).Methods("GET")
}

// registerWarehouseRoutes registers locations, inventory, movements and
// stock takes.
func registerWarehouseRoutes(api *mux.Router) {
	api.HandleFunc("/wms/locations", handlers.GetAllLocations).Methods("GET")
	api.HandleFunc("/wms/locations", handlers.CreateLocation).Methods("POST")
	api.HandleFunc("/wms/locations/{id}", handlers.UpdateLocation).Methods("PUT")
	api.HandleFunc("/wms/locations/{id}", handlers.DeleteLocation).Methods("DELETE")

	api.HandleFunc("/wms/inventory", handlers.GetAllInventory).Methods("GET")
	api.HandleFunc("/wms/inventory/summary", handlers.GetInventorySummary).Methods("GET")
	api.HandleFunc("/wms/inventory/{id}", handlers.GetInventoryItem).Methods("GET")
	api.HandleFunc("/wms/inbound", handlers.InboundInventory).Methods("POST")
	api.HandleFunc("/wms/outbound", handlers.OutboundInventory).Methods("POST")
	api.HandleFunc("/wms/transfer", handlers.TransferInventory).Methods("POST")
	api.HandleFunc("/wms/movements", handlers.GetAllMovements).Methods("GET")

	api.HandleFunc("/wms/stocktakes", handlers.GetAllStockTakes).Methods("GET")
	api.HandleFunc("/wms/stocktakes", handlers.CreateStockTake).Methods("POST")
	api.HandleFunc("/wms/stocktakes/{number}/details", handlers.GetStockTakeDetails).Methods("GET")
}

// registerLabelRoutes registers R0 label and EPC endpoints.
func registerLabelRoutes(api *mux.Router) {
	api.HandleFunc("/labels", handlers.GetAllR0Labels).Methods("GET")
	api.HandleFunc("/labels/sync", handlers.SyncR0Label).Methods("POST")
	api.HandleFunc("/labels/{code}", handlers.GetR0LabelByCode).Methods("GET")
	api.HandleFunc("/epc/change", handlers.ChangeEpc).Methods("POST")
	api.HandleFunc("/epc/check/{epc}", handlers.CheckEpc).Methods("GET")
	api.HandleFunc("/epc/history", handlers.GetEpcHistory).Methods("GET")
}

// registerScheduleRoutes registers the shift roster endpoints.
func registerScheduleRoutes(api *mux.Router) {
	api.HandleFunc("/shifts", handlers.GetAllShifts).Methods("GET")
	api.HandleFunc("/shifts", handlers.CreateShift).Methods("POST")
	api.HandleFunc("/shifts/batch", handlers.BatchImportShifts).Methods("POST")
	api.HandleFunc("/shifts/{id}", handlers.UpdateShift).Methods("PUT")
	api.HandleFunc("/shifts/{id}", handlers.DeleteShift).Methods("DELETE")
}

// crudHandlers holds handlers for a CRUD resource
type crudHandlers struct {
	getAll func(http.ResponseWriter, *http.Request)
	create func(http.ResponseWriter, *http.Request)
	getOne func(http.ResponseWriter, *http.Request)
	update func(http.ResponseWriter, *http.Request)
	delete func(http.ResponseWriter, *http.Request)
}

// registerCRUDRoutes registers standard CRUD routes for a resource
func registerCRUDRoutes(router *mux.Router, path string, h crudHandlers) {
	router.HandleFunc(path, h.getAll).Methods("GET")
	router.HandleFunc(path, h.create).Methods("POST")
	router.HandleFunc(path+"/{id}", h.getOne).Methods("GET")
	if h.update != nil {
		router.HandleFunc(path+"/{id}", h.update).Methods("PUT")
	}
	router.HandleFunc(path+"/{id}", h.delete).Methods("DELETE")
}

// registerAdminRoutes registers master-data and audit routes, restricted
// to supervisors and admins.
func registerAdminRoutes(admin *mux.Router) {
	supervisors := []string{"supervisor"}

	masterResources := []struct {
		path string
		h    crudHandlers
	}{
		{"/customers", crudHandlers{getAll: handlers.GetAllCustomers, create: handlers.CreateCustomer, update: handlers.UpdateCustomer, delete: handlers.DeleteCustomer}},
		{"/products", crudHandlers{getAll: handlers.GetAllProducts, create: handlers.CreateProduct, update: handlers.UpdateProduct, delete: handlers.DeleteProduct}},
		{"/parts", crudHandlers{getAll: handlers.GetAllParts, create: handlers.CreatePart, update: handlers.UpdatePart, delete: handlers.DeletePart}},
		{"/operators", crudHandlers{getAll: handlers.GetAllOperators, create: handlers.CreateOperator, update: handlers.UpdateOperator, delete: handlers.DeleteOperator}},
	}
	for _, res := range masterResources {
		admin.Handle(res.path, middleware.RequireRole(supervisors,
			http.HandlerFunc(res.h.getAll))).Methods("GET")
		admin.Handle(res.path, middleware.RequireRole(supervisors,
			http.HandlerFunc(res.h.create))).Methods("POST")
		admin.Handle(res.path+"/{id}", middleware.RequireRole(supervisors,
			http.HandlerFunc(res.h.update))).Methods("PUT")
		admin.Handle(res.path+"/{id}", middleware.RequireRole(supervisors,
			http.HandlerFunc(res.h.delete))).Methods("DELETE")
	}

	admin.Handle("/ngreasons", middleware.RequireRole(supervisors,
		http.HandlerFunc(handlers.GetAllNgReasons))).Methods("GET")
	admin.Handle("/ngreasons", middleware.RequireRole(supervisors,
		http.HandlerFunc(handlers.CreateNgReason))).Methods("POST")
	admin.Handle("/ngreasons/{id}", middleware.RequireRole(supervisors,
		http.HandlerFunc(handlers.DeleteNgReason))).Methods("DELETE")

	admin.Handle("/audit", middleware.RequireRole(supervisors,
		http.HandlerFunc(handlers.GetAuditLogs))).Methods("GET")
}
