package config

import (
	"gorm.io/gorm"

	"smai.tw/mes/models"
)

// defaultLocations are the storage areas of the Y3 building. Created on
// first boot; operators manage them afterwards.
var defaultLocations = []models.WmsLocation{
	{Code: "Y3-3RA", Name: "Rack A, floor 3", Factory: "Y3", LocationType: "rack", SortOrder: 1},
	{Code: "Y3-3RB", Name: "Rack B, floor 3", Factory: "Y3", LocationType: "rack", SortOrder: 2},
	{Code: "Y3-4RC", Name: "Rack C, floor 4", Factory: "Y3", LocationType: "rack", SortOrder: 3},
	{Code: "Y3-4RD", Name: "Rack D, floor 4", Factory: "Y3", LocationType: "rack", SortOrder: 4},
	{Code: "Y3-5RE", Name: "Rack E, floor 5", Factory: "Y3", LocationType: "rack", SortOrder: 5},
	{Code: "Y3-6RF", Name: "Rack F, floor 6", Factory: "Y3", LocationType: "rack", SortOrder: 6},
	{Code: "Y3-7RG", Name: "Rack G, floor 7", Factory: "Y3", LocationType: "rack", SortOrder: 7},
	{Code: "Y3-7RH", Name: "Rack H, floor 7", Factory: "Y3", LocationType: "rack", SortOrder: 8},
	{Code: "Y3-8RI", Name: "Rack I, floor 8", Factory: "Y3", LocationType: "rack", SortOrder: 9},
	{Code: "Y3-STAGE", Name: "Staging area", Factory: "Y3", LocationType: "staging", SortOrder: 10},
}

var defaultNgReasons = []models.NgReason{
	{Code: "NG-SCRATCH", Name: "Surface scratch", SortOrder: 1},
	{Code: "NG-DENT", Name: "Frame dent", SortOrder: 2},
	{Code: "NG-MESH", Name: "Mesh damage", SortOrder: 3},
	{Code: "NG-GLUE", Name: "Glue overflow", SortOrder: 4},
	{Code: "NG-DIM", Name: "Dimension out of spec", SortOrder: 5},
	{Code: "NG-RFID", Name: "RFID tag unreadable", SortOrder: 6},
	{Code: "NG-OTHER", Name: "Other", SortOrder: 99},
}

// Seed inserts reference rows that the floor expects on a fresh
// database. Existing rows are left alone.
func Seed(db *gorm.DB) error {
	for _, loc := range defaultLocations {
		loc.IsActive = true
		var existing models.WmsLocation
		if err := db.Where("code = ?", loc.Code).FirstOrCreate(&existing, loc).Error; err != nil {
			return err
		}
	}
	for _, reason := range defaultNgReasons {
		reason.IsActive = true
		var existing models.NgReason
		if err := db.Where("code = ?", reason.Code).FirstOrCreate(&existing, reason).Error; err != nil {
			return err
		}
	}
	return nil
}
