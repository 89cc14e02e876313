package planner

import (
	"fmt"
	"strings"
)

// SummaryNoProducts is the fixed message for an empty plan.
const SummaryNoProducts = "No products found in the system."

// PlanSummarizer derives the aggregate narrative from the final plan. The
// counts are taken post-budget, so a budget-driven drop moves a line into
// the "no purchase needed" bucket.
type PlanSummarizer struct{}

func (PlanSummarizer) Summarize(plan []PlanLine) string {
	if len(plan) == 0 {
		return SummaryNoProducts
	}

	totalProducts := len(plan)
	totalToOrder := 0
	slowMoving := 0
	zeroStockItems := 0
	noOrderThisWeek := 0
	for _, line := range plan {
		totalToOrder += line.SuggestedOrderQty
		if line.AvgWeeklySales < 1 && line.CurrentStock > 0 {
			slowMoving++
		}
		if line.CurrentStock == 0 {
			zeroStockItems++
		}
		if line.SuggestedOrderQty == 0 {
			noOrderThisWeek++
		}
	}

	summaryLines := []string{
		fmt.Sprintf("Analyzed %d products for this week's replenishment.", totalProducts),
		fmt.Sprintf("Total quantity suggested to order: %d units.", totalToOrder),
		fmt.Sprintf("%d items are slow-moving and are skipped for ordering.", slowMoving),
		fmt.Sprintf("%d items currently have zero stock and are prioritized where needed.", zeroStockItems),
		fmt.Sprintf("For %d items, no purchase is needed this week.", noOrderThisWeek),
	}
	return strings.Join(summaryLines, " ")
}
