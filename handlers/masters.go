package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"smai.tw/mes/config"
	"smai.tw/mes/models"
)

// Master-data CRUD. Deletes flip is_active; list endpoints return active
// rows only.

func GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	var customers []models.Customer
	if err := config.DB.Where("is_active = ?", true).
		Order("name ASC").Find(&customers).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	customer.IsActive = true
	if err := config.DB.Create(&customer).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := config.DB.Save(&customer).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	deactivate(w, r, &models.Customer{})
}

func GetAllProducts(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if err := config.DB.Where("is_active = ?", true).
		Order("name ASC").Find(&products).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	product.IsActive = true
	if err := config.DB.Create(&product).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var product models.Product
	if err := config.DB.First(&product, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := config.DB.Save(&product).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func DeleteProduct(w http.ResponseWriter, r *http.Request) {
	deactivate(w, r, &models.Product{})
}

func GetAllParts(w http.ResponseWriter, r *http.Request) {
	var parts []models.Part
	if err := config.DB.Where("is_active = ?", true).
		Order("part_number ASC").Find(&parts).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, parts)
}

func CreatePart(w http.ResponseWriter, r *http.Request) {
	var part models.Part
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if part.PartNumber == "" {
		http.Error(w, "partNumber is required", http.StatusBadRequest)
		return
	}
	part.IsActive = true
	if err := config.DB.Create(&part).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, part)
}

func UpdatePart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var part models.Part
	if err := config.DB.First(&part, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := config.DB.Save(&part).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, part)
}

func DeletePart(w http.ResponseWriter, r *http.Request) {
	deactivate(w, r, &models.Part{})
}

type operatorRequest struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Pin   string `json:"pin"`
}

func GetAllOperators(w http.ResponseWriter, r *http.Request) {
	var operators []models.Operator
	if err := config.DB.Where("is_active = ?", true).
		Order("code ASC").Find(&operators).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, operators)
}

func CreateOperator(w http.ResponseWriter, r *http.Request) {
	var req operatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Code == "" || req.Name == "" {
		http.Error(w, "code and name are required", http.StatusBadRequest)
		return
	}
	if len(req.Pin) < 4 {
		http.Error(w, "pin must be at least 4 digits", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Pin), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash pin", http.StatusInternalServerError)
		return
	}
	operator := models.Operator{
		Name:     req.Name,
		Code:     req.Code,
		Email:    req.Email,
		Role:     req.Role,
		PinHash:  string(hash),
		IsActive: true,
	}
	if operator.Role == "" {
		operator.Role = "operator"
	}
	if err := config.DB.Create(&operator).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, operator)
}

func UpdateOperator(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var operator models.Operator
	if err := config.DB.First(&operator, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var req operatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name != "" {
		operator.Name = req.Name
	}
	if req.Email != "" {
		operator.Email = req.Email
	}
	if req.Role != "" {
		operator.Role = req.Role
	}
	if req.Pin != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Pin), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "failed to hash pin", http.StatusInternalServerError)
			return
		}
		operator.PinHash = string(hash)
	}
	if err := config.DB.Save(&operator).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, operator)
}

func DeleteOperator(w http.ResponseWriter, r *http.Request) {
	deactivate(w, r, &models.Operator{})
}

func GetAllNgReasons(w http.ResponseWriter, r *http.Request) {
	var reasons []models.NgReason
	if err := config.DB.Where("is_active = ?", true).
		Order("sort_order ASC, code ASC").Find(&reasons).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, reasons)
}

func CreateNgReason(w http.ResponseWriter, r *http.Request) {
	var reason models.NgReason
	if err := json.NewDecoder(r.Body).Decode(&reason); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	reason.IsActive = true
	if err := config.DB.Create(&reason).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, reason)
}

func DeleteNgReason(w http.ResponseWriter, r *http.Request) {
	deactivate(w, r, &models.NgReason{})
}

// deactivate soft-deletes a master record by flipping is_active.
func deactivate(w http.ResponseWriter, r *http.Request, model interface{}) {
	id := mux.Vars(r)["id"]
	result := config.DB.Model(model).Where("id = ?", id).Update("is_active", false)
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
