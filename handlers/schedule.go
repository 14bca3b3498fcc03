package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"smai.tw/mes/config"
	"smai.tw/mes/models"
)

// defaultShiftHours maps a shift type to its start and end times. Used
// when a roster import omits them.
var defaultShiftHours = map[string][2]string{
	models.ShiftDay:     {"08:00", "16:00"},
	models.ShiftEvening: {"16:00", "00:00"},
	models.ShiftNight:   {"00:00", "08:00"},
}

func GetAllShifts(w http.ResponseWriter, r *http.Request) {
	var shifts []models.Shift
	query := config.DB.Order("shift_date DESC, shift_type ASC")
	if date := r.URL.Query().Get("date"); date != "" {
		query = query.Where("shift_date = ?", date)
	}
	if operatorID := r.URL.Query().Get("operatorId"); operatorID != "" {
		query = query.Where("operator_id = ?", operatorID)
	}
	if err := query.Find(&shifts).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, shifts)
}

func CreateShift(w http.ResponseWriter, r *http.Request) {
	var shift models.Shift
	if err := json.NewDecoder(r.Body).Decode(&shift); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if shift.ShiftDate == "" {
		http.Error(w, "shiftDate is required", http.StatusBadRequest)
		return
	}
	applyShiftDefaults(&shift)
	if err := config.DB.Create(&shift).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, shift)
}

func UpdateShift(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var shift models.Shift
	if err := config.DB.First(&shift, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&shift); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := config.DB.Save(&shift).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, shift)
}

func DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result := config.DB.Delete(&models.Shift{}, "id = ?", id)
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

type shiftImportResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// BatchImportShifts loads a roster. An operator already rostered for a
// date keeps the existing entry; the imported duplicate is skipped.
func BatchImportShifts(w http.ResponseWriter, r *http.Request) {
	var batch []models.Shift
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	var result shiftImportResult
	for i := range batch {
		shift := batch[i]
		if shift.ShiftDate == "" || shift.OperatorID == "" {
			result.Skipped++
			continue
		}
		var count int64
		config.DB.Model(&models.Shift{}).
			Where("shift_date = ? AND operator_id = ?", shift.ShiftDate, shift.OperatorID).
			Count(&count)
		if count > 0 {
			result.Skipped++
			continue
		}
		applyShiftDefaults(&shift)
		if err := config.DB.Create(&shift).Error; err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		result.Created++
	}
	respondJSON(w, http.StatusOK, result)
}

func applyShiftDefaults(shift *models.Shift) {
	if shift.ShiftType == "" {
		shift.ShiftType = models.ShiftDay
	}
	if shift.Status == "" {
		shift.Status = models.ShiftScheduled
	}
	if hours, ok := defaultShiftHours[shift.ShiftType]; ok {
		if shift.StartTime == "" {
			shift.StartTime = hours[0]
		}
		if shift.EndTime == "" {
			shift.EndTime = hours[1]
		}
	}
}
