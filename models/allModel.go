package models

import (
	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
)

// MigrateTable runs AutoMigrate for every persisted model.
func MigrateTable() {
	db := config.GetDB()
	err := db.AutoMigrate(
		&Section{},
		&User{},
		&Patient{},
		&LabTest{},
		&TestPriceHistory{},
		&Equipment{},
		&CalibrationRecord{},
		&Item{},
		&StockIn{},
		&StockOut{},
		&LabResult{},
		&Transaction{},
		&TransactionDetail{},
		&Certificate{},
		&ActivityLog{},
	)
	utils.ErrorPanic(err)
}
