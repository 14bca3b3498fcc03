package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"smai.tw/mes/config"
	"smai.tw/mes/middleware"
	"smai.tw/mes/models"
)

// writeAudit appends one audit row for the current request. Audit
// failures are logged and swallowed; they never fail the operation that
// triggered them.
func writeAudit(r *http.Request, action, module, targetID, targetName string, details interface{}) {
	entry := models.AuditLog{
		Timestamp:    time.Now(),
		OperatorName: middleware.GetOperatorName(r),
		OperatorCode: middleware.GetOperatorCode(r),
		Action:       action,
		Module:       module,
		TargetType:   module,
		TargetID:     targetID,
		TargetName:   targetName,
		IPAddress:    r.RemoteAddr,
		UserAgent:    r.UserAgent(),
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = datatypes.JSON(raw)
		}
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		log.Warn().Err(err).Str("action", action).Str("module", module).
			Msg("audit write failed")
	}
}

// GetAuditLogs returns audit rows, newest first, filterable by module
// and operator code.
func GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Order("timestamp DESC")
	if module := r.URL.Query().Get("module"); module != "" {
		query = query.Where("module = ?", module)
	}
	if code := r.URL.Query().Get("operatorCode"); code != "" {
		query = query.Where("operator_code = ?", code)
	}
	limit := 200
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	var logs []models.AuditLog
	if err := query.Limit(limit).Find(&logs).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}
