package planner

import (
	"math"

	"github.com/shopspring/decimal"
)

// Budget notes stamped by the BudgetAllocator. The web layer renders these
// verbatim, so they are part of the observable contract.
const (
	BudgetNoteWithinBudget = "Within weekly budget"
	BudgetNoteDropped      = "Dropped due to budget limit"
	BudgetNoteKept         = "Kept in final order"
)

// SlowMoverReason is the fixed rationale for items forecast under one unit a
// week while stock remains on hand. The override wins over the order math.
const SlowMoverReason = "Slow-moving item (avg < 1/week) with stock available - no order."

// PlanLine is the per-product outcome of one pipeline run. Lines are built
// fresh each run and never mutated after the budget stage completes.
type PlanLine struct {
	ProductId         int             `json:"product_id"`
	Name              string          `json:"name"`
	AvgWeeklySales    float64         `json:"avg_weekly_sales"`
	CurrentStock      int             `json:"current_stock"`
	ForecastNextWeek  float64         `json:"forecast_next_week"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	LineCost          decimal.Decimal `json:"line_cost"`
	SuggestedOrderQty int             `json:"suggested_order_qty"`
	Reason            string          `json:"reason"`
	BudgetNote        string          `json:"budget_note"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
