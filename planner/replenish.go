package planner

import (
	"fmt"
	"math"

	"github.com/nwretail/replenish_backend/models"
)

const DefaultSafetyFactor = 1.5

// ReplenishmentPlanner turns forecasts plus the min/max stock policy into a
// suggested order quantity and rationale per product.
type ReplenishmentPlanner struct {
	SafetyFactor float64
}

func NewReplenishmentPlanner(safetyFactor float64) *ReplenishmentPlanner {
	if safetyFactor <= 0 {
		safetyFactor = DefaultSafetyFactor
	}
	return &ReplenishmentPlanner{SafetyFactor: safetyFactor}
}

// BuildPlan emits exactly one PlanLine per active product, in the snapshot's
// product order. Order quantities are never negative.
//
// Required stock is max(minStock, forecast*safetyFactor) clamped down to
// maxStock. When maxStock < minStock the clamp still applies and the target
// can land below minStock; that malformed policy is tolerated, not repaired.
// The deficit is rounded half away from zero (math.Round), so a half-unit
// deficit rounds up.
func (p *ReplenishmentPlanner) BuildPlan(snapshot *models.StateSnapshot, forecasts map[int]float64) []PlanLine {
	plan := make([]PlanLine, 0, len(snapshot.Products))
	for _, product := range snapshot.Products {
		currentStock := 0
		if level, ok := snapshot.StockByProduct[product.ID]; ok {
			currentStock = level.QtyInHand
		}

		avgSales := forecasts[product.ID]
		forecastNextWeek := avgSales

		requiredStock := forecastNextWeek * p.SafetyFactor
		if float64(product.MinStock) > requiredStock {
			requiredStock = float64(product.MinStock)
		}
		if requiredStock > float64(product.MaxStock) {
			requiredStock = float64(product.MaxStock)
		}

		orderQty := int(math.Round(requiredStock - float64(currentStock)))
		if orderQty < 0 {
			orderQty = 0
		}

		var reason string
		if avgSales < 1 && currentStock > 0 {
			reason = SlowMoverReason
			orderQty = 0
		} else {
			reason = fmt.Sprintf(
				"Avg sales ~ %.2f/week, current stock = %d, target stock ~ %.2f.",
				avgSales, currentStock, requiredStock,
			)
		}

		plan = append(plan, PlanLine{
			ProductId:         product.ID,
			Name:              product.Name,
			AvgWeeklySales:    round2(avgSales),
			CurrentStock:      currentStock,
			ForecastNextWeek:  round2(forecastNextWeek),
			SuggestedOrderQty: orderQty,
			Reason:            reason,
		})
	}
	return plan
}
