package models

import (
	"context"

	"gorm.io/gorm"
)

// StateSnapshot is the immutable read of catalog + stock + sales the planner
// consumes. It is materialized once per pipeline run and never refreshed
// mid-computation; concurrent runs each get their own snapshot.
type StateSnapshot struct {
	Products       []Product            `json:"products"`
	StockByProduct map[int]StockLevel   `json:"stock_by_product"`
	SalesByProduct map[int][]WeeklySale `json:"sales_by_product"`
}

// CollectStateSnapshot reads the three collections in one pass: active
// products in id order, stock keyed by product id, and sales history keyed
// by product id with the most recent week first.
func CollectStateSnapshot(ctx context.Context, db *gorm.DB) (*StateSnapshot, error) {
	products, err := ListActiveProducts(ctx, db)
	if err != nil {
		return nil, err
	}
	stockByProduct, err := ListStockLevels(ctx, db)
	if err != nil {
		return nil, err
	}
	salesByProduct, err := ListWeeklySales(ctx, db)
	if err != nil {
		return nil, err
	}
	return &StateSnapshot{
		Products:       products,
		StockByProduct: stockByProduct,
		SalesByProduct: salesByProduct,
	}, nil
}
