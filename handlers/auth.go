package handlers

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"smai.tw/mes/config"
	"smai.tw/mes/middleware"
	"smai.tw/mes/models"
)

type loginRequest struct {
	Code string `json:"code"`
	Pin  string `json:"pin"`
}

// Login authenticates an operator by code and PIN and returns a JWT.
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Code == "" || req.Pin == "" {
		http.Error(w, "code and pin are required", http.StatusBadRequest)
		return
	}

	var operator models.Operator
	if err := config.DB.Where("code = ? AND is_active = ?", req.Code, true).
		First(&operator).Error; err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(operator.PinHash), []byte(req.Pin)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := middleware.GenerateToken(operator.ID.String(), operator.Name, operator.Code, operator.Role)
	if err != nil {
		http.Error(w, "failed to issue token", http.StatusInternalServerError)
		return
	}

	writeAudit(r, "login", "auth", operator.ID.String(), operator.Name, nil)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":    token,
		"operator": operator,
	})
}

type changePinRequest struct {
	OldPin string `json:"oldPin"`
	NewPin string `json:"newPin"`
}

// ChangePin lets the authenticated operator rotate their own PIN.
func ChangePin(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req changePinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.NewPin) < 4 {
		http.Error(w, "new pin must be at least 4 digits", http.StatusBadRequest)
		return
	}

	var operator models.Operator
	if err := config.DB.First(&operator, "id = ?", claims.OperatorID).Error; err != nil {
		http.Error(w, "operator not found", http.StatusNotFound)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(operator.PinHash), []byte(req.OldPin)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPin), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash pin", http.StatusInternalServerError)
		return
	}
	if err := config.DB.Model(&operator).Update("pin_hash", string(hash)).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Profile returns the authenticated operator's claims.
func Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"operatorId": claims.OperatorID,
		"name":       claims.Name,
		"code":       claims.Code,
		"role":       claims.Role,
	})
}
