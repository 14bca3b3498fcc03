package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"smai.tw/mes/models"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250601_create_production_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.WorkOrder{}, &models.Dispatch{}, &models.Report{},
					&models.OutgassingTest{}, &models.AoiInspection{}, &models.NgDetail{})
			},
		},
		{
			ID: "20250601_create_master_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Part{},
					&models.Operator{}, &models.NgReason{})
			},
		},
		{
			ID: "20250615_create_warehouse_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.WmsLocation{}, &models.InventoryItem{},
					&models.Movement{}, &models.StockTake{}, &models.StockTakeDetail{})
			},
		},
		{
			ID: "20250701_create_label_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.R0Label{}, &models.EpcHistory{})
			},
		},
		{
			ID: "20250715_create_schedule_and_audit_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Shift{}, &models.AuditLog{})
			},
		},
		{
			// Rows imported from the legacy system stored active flags as
			// assorted text values. Normalize them once so the boolean
			// columns can be trusted.
			ID: "20250801_normalize_active_flags",
			Migrate: func(tx *gorm.DB) error {
				tables := []string{"customers", "products", "parts", "operators",
					"ng_reasons", "wms_locations"}
				for _, table := range tables {
					if err := tx.Exec("UPDATE " + table +
						" SET is_active = true WHERE is_active IS NULL").Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	})
	return m.Migrate()
}
