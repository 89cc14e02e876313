package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nwretail/replenish_backend/utils"
)

type Product struct {
	ID           int             `gorm:"primary_key" json:"id"`
	Name         string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Category     string          `gorm:"size:100" json:"category"`
	CostPrice    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cost_price"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"selling_price"`
	MinStock     int             `gorm:"not null;default:0" json:"min_stock"`
	MaxStock     int             `gorm:"not null;default:100" json:"max_stock"`
	LeadTimeDays int             `gorm:"not null;default:3" json:"lead_time_days"`
	IsActive     *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProduct struct {
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	MinStock     int             `json:"min_stock" validate:"gte=0"`
	MaxStock     int             `json:"max_stock" validate:"gte=0"`
	LeadTimeDays int             `json:"lead_time_days" validate:"gte=0"`
}

// ListActiveProducts returns the active catalog ordered by id. The planner
// relies on this ordering for deterministic output.
func ListActiveProducts(ctx context.Context, db *gorm.DB) ([]Product, error) {
	var products []Product
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func GetProduct(ctx context.Context, db *gorm.DB, id int) (*Product, error) {
	var product Product
	err := db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &product, nil
}

func CreateProduct(ctx context.Context, db *gorm.DB, input *NewProduct) (*Product, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	leadTime := input.LeadTimeDays
	if leadTime == 0 {
		leadTime = 3
	}
	maxStock := input.MaxStock
	if maxStock == 0 {
		maxStock = 100
	}

	product := Product{
		Name:         input.Name,
		Category:     input.Category,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		MinStock:     input.MinStock,
		MaxStock:     maxStock,
		LeadTimeDays: leadTime,
	}
	if err := db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(ctx context.Context, db *gorm.DB, id int, input *NewProduct) (*Product, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	product, err := GetProduct(ctx, db, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Category = input.Category
	product.CostPrice = input.CostPrice
	product.SellingPrice = input.SellingPrice
	product.MinStock = input.MinStock
	product.MaxStock = input.MaxStock
	product.LeadTimeDays = input.LeadTimeDays
	if err := db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeactivateProduct soft-deletes: planner and listings only read active rows,
// history (sales, purchase order items) keeps referencing the id.
func DeactivateProduct(ctx context.Context, db *gorm.DB, id int) error {
	result := db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrorRecordNotFound
	}
	return nil
}
