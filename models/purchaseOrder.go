package models

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nwretail/replenish_backend/utils"
)

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusCreated PurchaseOrderStatus = "CREATED"
)

type PurchaseOrder struct {
	ID            int                 `gorm:"primary_key" json:"id"`
	OrderNumber   string              `gorm:"index;size:100;not null" json:"order_number"`
	WeekStartDate time.Time           `gorm:"type:date;not null" json:"week_start_date"`
	Status        PurchaseOrderStatus `gorm:"size:20;not null;default:CREATED" json:"status"`
	Items         []PurchaseOrderItem `gorm:"foreignkey:PoId" json:"items"`
	CreatedAt     time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

// PurchaseOrderItem snapshots the product name at ordering time so the line
// stays readable after catalog edits.
type PurchaseOrderItem struct {
	ID          int    `gorm:"primary_key" json:"id"`
	PoId        int    `gorm:"index;not null" json:"po_id"`
	ProductId   int    `gorm:"index;not null" json:"product_id"`
	ProductName string `gorm:"size:100;not null" json:"product_name"`
	Qty         int    `gorm:"not null;default:0" json:"qty" validate:"gte=0"`
}

func GetPurchaseOrder(ctx context.Context, db *gorm.DB, id int) (*PurchaseOrder, error) {
	var po PurchaseOrder
	err := db.WithContext(ctx).
		Preload("Items").
		First(&po, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &po, nil
}

func ListPurchaseOrders(ctx context.Context, db *gorm.DB, limit int) ([]PurchaseOrder, error) {
	var orders []PurchaseOrder
	err := db.WithContext(ctx).
		Preload("Items").
		Order("id DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
