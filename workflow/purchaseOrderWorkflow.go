package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nwretail/replenish_backend/config"
	"github.com/nwretail/replenish_backend/models"
	"github.com/nwretail/replenish_backend/planner"
)

var (
	ErrorNothingToOrder  = errors.New("no items require ordering this week")
	ErrorOrderInProgress = errors.New("another purchase order for this week is being created")
)

// CreatePurchaseOrderFromPlan materializes a purchase order from the
// positive-quantity lines of a final plan. The order plus its items are
// written in one transaction; a Redis lock serializes creation per week so
// double-submits from the planner page don't produce duplicate orders. The
// lock is a best-effort optimization, absence of Redis degrades to no
// serialization rather than failure.
func CreatePurchaseOrderFromPlan(ctx context.Context, db *gorm.DB, logger *logrus.Logger, weekStart time.Time, plan []planner.PlanLine) (*models.PurchaseOrder, error) {
	items := make([]models.PurchaseOrderItem, 0, len(plan))
	for _, line := range plan {
		if line.SuggestedOrderQty <= 0 {
			continue
		}
		items = append(items, models.PurchaseOrderItem{
			ProductId:   line.ProductId,
			ProductName: line.Name,
			Qty:         line.SuggestedOrderQty,
		})
	}
	if len(items) == 0 {
		return nil, ErrorNothingToOrder
	}

	if locker := config.GetRedisLock(); locker != nil {
		lockKey := "po-lock:" + weekStart.Format("2006-01-02")
		lock, err := locker.Obtain(ctx, lockKey, 10*time.Second, nil)
		if err == redislock.ErrNotObtained {
			return nil, ErrorOrderInProgress
		}
		if err == nil {
			defer lock.Release(ctx)
		} else {
			config.LogError(logger, "purchaseOrderWorkflow.go", "CreatePurchaseOrderFromPlan", "redislock.Obtain", lockKey, err)
		}
	}

	po := models.PurchaseOrder{
		OrderNumber:   newOrderNumber(weekStart),
		WeekStartDate: weekStart,
		Status:        models.PurchaseOrderStatusCreated,
		Items:         items,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&po).Error
	})
	if err != nil {
		config.LogError(logger, "purchaseOrderWorkflow.go", "CreatePurchaseOrderFromPlan", "tx.Create", po.OrderNumber, err)
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"po_id":        po.ID,
		"order_number": po.OrderNumber,
		"week_start":   weekStart.Format("2006-01-02"),
		"items":        len(po.Items),
	}).Info("purchase order created")
	return &po, nil
}

func newOrderNumber(weekStart time.Time) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("PO-%s-%s", weekStart.Format("20060102"), suffix)
}
