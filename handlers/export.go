package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"

	"smai.tw/mes/models"
)

// ExportWorkOrdersToExcel downloads the work-order ledger as a workbook.
func ExportWorkOrdersToExcel(w http.ResponseWriter, r *http.Request) {
	orders, err := mesService.ListWorkOrders()
	if err != nil {
		respondError(w, err)
		return
	}

	book := excelize.NewFile()
	defer book.Close()
	sheet := "WorkOrders"
	book.SetSheetName(book.GetSheetName(0), sheet)

	headers := []string{"Order Number", "Type", "Customer", "Site", "Product",
		"Target Qty", "Completed", "Good", "NG", "Status", "Due Date", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		book.SetCellValue(sheet, cell, h)
	}

	for row, wo := range orders {
		values := []interface{}{
			wo.OrderNumber, wo.OrderType, wo.CustomerName, wo.CustomerSite,
			wo.ProductModel, wo.Quantity, wo.CompletedQty, wo.GoodQty, wo.NgQty,
			wo.Status, formatJSONTime(wo.DueDate), wo.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			book.SetCellValue(sheet, cell, v)
		}
	}

	writeWorkbook(w, book, "workorders")
}

// ExportWorkOrderReportsToExcel downloads one work order's production
// events as a workbook.
func ExportWorkOrderReportsToExcel(w http.ResponseWriter, r *http.Request) {
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

	book := excelize.NewFile()
	defer book.Close()
	sheet := "Reports"
	book.SetSheetName(book.GetSheetName(0), sheet)

	headers := []string{"Report Number", "Station", "Operator", "Good", "NG",
		"Total", "Abnormal", "Abnormal Type", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		book.SetCellValue(sheet, cell, h)
	}
	for row, report := range reports {
		values := []interface{}{
			report.ReportNumber, report.StationName, report.OperatorName,
			report.GoodQty, report.NgQty, report.Quantity,
			report.HasAbnormal, report.AbnormalType,
			report.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			book.SetCellValue(sheet, cell, v)
		}
	}

	writeWorkbook(w, book, "reports")
}

func writeWorkbook(w http.ResponseWriter, book *excelize.File, prefix string) {
	buffer, err := book.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}
	filename := fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func formatJSONTime(t *models.JSONTime) string {
	if t == nil {
		return ""
	}
	return t.Time().Format("2006-01-02")
}
