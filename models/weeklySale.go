package models

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nwretail/replenish_backend/utils"
)

// WeeklySale is one week's sold quantity for one product.
type WeeklySale struct {
	ID            int       `gorm:"primary_key" json:"id"`
	ProductId     int       `gorm:"index;not null" json:"product_id"`
	WeekStartDate time.Time `gorm:"type:date;not null" json:"week_start_date"`
	QtySold       int       `gorm:"not null;default:0" json:"qty_sold" validate:"gte=0"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type NewWeeklySale struct {
	ProductId     int       `json:"product_id" binding:"required" validate:"gt=0"`
	WeekStartDate time.Time `json:"week_start_date" binding:"required"`
	QtySold       int       `json:"qty_sold" validate:"gte=0"`
}

// WeeklySaleRow is the sales/catalog join for listings.
type WeeklySaleRow struct {
	ID            int       `json:"id"`
	WeekStartDate time.Time `json:"week_start_date"`
	QtySold       int       `json:"qty_sold"`
	Name          string    `json:"name"`
}

func InsertWeeklySale(ctx context.Context, db *gorm.DB, input *NewWeeklySale) (*WeeklySale, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	sale := WeeklySale{
		ProductId:     input.ProductId,
		WeekStartDate: input.WeekStartDate,
		QtySold:       input.QtySold,
	}
	if err := db.WithContext(ctx).Create(&sale).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListWeeklySales returns every sales row grouped by product id, most recent
// week first. The forecast horizon cut happens downstream, the full history
// is part of the snapshot.
func ListWeeklySales(ctx context.Context, db *gorm.DB) (map[int][]WeeklySale, error) {
	var sales []WeeklySale
	err := db.WithContext(ctx).
		Order("week_start_date DESC, id").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	byProduct := make(map[int][]WeeklySale)
	for _, sale := range sales {
		byProduct[sale.ProductId] = append(byProduct[sale.ProductId], sale)
	}
	return byProduct, nil
}

// LatestWeeklySales lists the most recent sales rows with product names.
func LatestWeeklySales(ctx context.Context, db *gorm.DB, limit int) ([]WeeklySaleRow, error) {
	var rows []WeeklySaleRow
	err := db.WithContext(ctx).
		Table("weekly_sales AS w").
		Select("w.id, w.week_start_date, w.qty_sold, p.name").
		Joins("JOIN products p ON p.id = w.product_id").
		Order("w.week_start_date DESC, w.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
