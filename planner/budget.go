package planner

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nwretail/replenish_backend/models"
)

// DefaultWeeklyBudget is the monetary ceiling for one week's aggregate order
// cost unless the pipeline is configured otherwise.
var DefaultWeeklyBudget = decimal.NewFromInt(25000)

// BudgetAllocator prices the plan and, when the total exceeds the weekly
// budget, zeroes the lowest-demand orders until the plan fits.
type BudgetAllocator struct {
	WeeklyBudget decimal.Decimal
}

func NewBudgetAllocator(weeklyBudget decimal.Decimal) *BudgetAllocator {
	return &BudgetAllocator{WeeklyBudget: weeklyBudget}
}

// Apply stamps unit and line costs on every line and enforces the ceiling.
// Under budget, the plan comes back in its input order with every line
// marked "Within weekly budget". Over budget, the returned plan is sorted
// ascending by average weekly sales (stable, so ties keep snapshot order)
// and positive-quantity lines are zeroed in that order until the excess is
// covered; callers must not rely on the original ordering in that case.
func (a *BudgetAllocator) Apply(plan []PlanLine, products []models.Product) []PlanLine {
	costIndex := make(map[int]decimal.Decimal, len(products))
	for _, product := range products {
		costIndex[product.ID] = product.CostPrice
	}

	totalCost := decimal.Zero
	for i := range plan {
		unitCost := costIndex[plan[i].ProductId] // missing entries stay zero
		plan[i].UnitCost = unitCost
		plan[i].LineCost = unitCost.Mul(decimal.NewFromInt(int64(plan[i].SuggestedOrderQty)))
		totalCost = totalCost.Add(plan[i].LineCost)
	}

	if totalCost.LessThanOrEqual(a.WeeklyBudget) {
		for i := range plan {
			plan[i].BudgetNote = BudgetNoteWithinBudget
		}
		return plan
	}

	// Low sellers are the least important and get dropped first.
	sorted := make([]PlanLine, len(plan))
	copy(sorted, plan)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AvgWeeklySales < sorted[j].AvgWeeklySales
	})

	excess := totalCost.Sub(a.WeeklyBudget)
	for i := range sorted {
		if excess.LessThanOrEqual(decimal.Zero) {
			break
		}
		if sorted[i].SuggestedOrderQty <= 0 {
			continue
		}
		reductionCost := sorted[i].LineCost
		sorted[i].SuggestedOrderQty = 0
		sorted[i].LineCost = decimal.Zero
		sorted[i].BudgetNote = BudgetNoteDropped
		excess = excess.Sub(reductionCost)
	}

	for i := range sorted {
		if sorted[i].BudgetNote == "" {
			sorted[i].BudgetNote = BudgetNoteKept
		}
	}
	return sorted
}
