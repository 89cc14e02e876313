package models

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nwretail/replenish_backend/utils"
)

// StockLevel is the current quantity on hand, one row per product.
// Absence of a row means quantity 0.
type StockLevel struct {
	ProductId   int       `gorm:"primary_key" json:"product_id"`
	QtyInHand   int       `gorm:"not null;default:0" json:"qty_in_hand" validate:"gte=0"`
	LastUpdated time.Time `json:"last_updated"`
}

type NewStockLevel struct {
	ProductId int `json:"product_id" binding:"required" validate:"gt=0"`
	QtyInHand int `json:"qty_in_hand" validate:"gte=0"`
}

// StockRow is the catalog/stock join for listings.
type StockRow struct {
	ProductId int    `json:"product_id"`
	Name      string `json:"name"`
	QtyInHand int    `json:"qty_in_hand"`
}

// ListStockLevels returns all stock rows keyed by product id.
func ListStockLevels(ctx context.Context, db *gorm.DB) (map[int]StockLevel, error) {
	var levels []StockLevel
	if err := db.WithContext(ctx).Find(&levels).Error; err != nil {
		return nil, err
	}
	byProduct := make(map[int]StockLevel, len(levels))
	for _, level := range levels {
		byProduct[level.ProductId] = level
	}
	return byProduct, nil
}

// CurrentStockRows lists every active product with its quantity in hand,
// defaulting to 0 when no stock row exists yet.
func CurrentStockRows(ctx context.Context, db *gorm.DB) ([]StockRow, error) {
	var rows []StockRow
	err := db.WithContext(ctx).
		Table("products AS p").
		Select("p.id AS product_id, p.name, COALESCE(s.qty_in_hand, 0) AS qty_in_hand").
		Joins("LEFT JOIN stock_levels s ON p.id = s.product_id").
		Where("p.is_active = ?", true).
		Order("p.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertStockLevels replaces the quantity in hand for each given product.
func UpsertStockLevels(ctx context.Context, db *gorm.DB, inputs []NewStockLevel) error {
	if len(inputs) == 0 {
		return nil
	}
	now := time.Now()
	levels := make([]StockLevel, 0, len(inputs))
	for i := range inputs {
		if err := utils.ValidateStruct(&inputs[i]); err != nil {
			return err
		}
		levels = append(levels, StockLevel{
			ProductId:   inputs[i].ProductId,
			QtyInHand:   inputs[i].QtyInHand,
			LastUpdated: now,
		})
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"qty_in_hand", "last_updated"}),
		}).
		Create(&levels).Error
}
