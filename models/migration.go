package models

import (
	"log"

	"github.com/nwretail/replenish_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Product{},
		&StockLevel{},
		&WeeklySale{},
		&PurchaseOrder{}, &PurchaseOrderItem{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
