package planner

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nwretail/replenish_backend/models"
)

func TestApply_WithinBudgetKeepsOrderAndOrderingIntact(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Rice", CostPrice: decimal.NewFromInt(5)},
		{ID: 2, Name: "Oil", CostPrice: decimal.NewFromInt(8)},
	}
	plan := []PlanLine{
		{ProductId: 1, Name: "Rice", AvgWeeklySales: 4, SuggestedOrderQty: 10},
		{ProductId: 2, Name: "Oil", AvgWeeklySales: 2, SuggestedOrderQty: 5},
	}

	result := NewBudgetAllocator(decimal.NewFromInt(25000)).Apply(plan, products)

	if len(result) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(result))
	}
	// original order preserved under budget
	if result[0].ProductId != 1 || result[1].ProductId != 2 {
		t.Fatalf("expected original ordering, got %d then %d", result[0].ProductId, result[1].ProductId)
	}
	for _, line := range result {
		if line.BudgetNote != BudgetNoteWithinBudget {
			t.Fatalf("product %d: expected %q, got %q", line.ProductId, BudgetNoteWithinBudget, line.BudgetNote)
		}
	}
	if !result[0].LineCost.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected line cost 50, got %s", result[0].LineCost)
	}
	if !result[1].LineCost.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected line cost 40, got %s", result[1].LineCost)
	}
}

func TestApply_DropsLowestDemandFirst(t *testing.T) {
	// two orders of 30 units at 1000/unit, budget 35000: the excess of
	// 25000 is covered by dropping the lower-demand line alone
	products := []models.Product{
		{ID: 1, Name: "Slow", CostPrice: decimal.NewFromInt(1000)},
		{ID: 2, Name: "Fast", CostPrice: decimal.NewFromInt(1000)},
	}
	plan := []PlanLine{
		{ProductId: 1, Name: "Slow", AvgWeeklySales: 2, SuggestedOrderQty: 30},
		{ProductId: 2, Name: "Fast", AvgWeeklySales: 4, SuggestedOrderQty: 30},
	}

	result := NewBudgetAllocator(decimal.NewFromInt(35000)).Apply(plan, products)

	// result is sorted ascending by average weekly sales
	if result[0].ProductId != 1 {
		t.Fatalf("expected lowest-demand line first, got product %d", result[0].ProductId)
	}
	if result[0].SuggestedOrderQty != 0 || result[0].BudgetNote != BudgetNoteDropped {
		t.Fatalf("expected product 1 dropped, got qty=%d note=%q", result[0].SuggestedOrderQty, result[0].BudgetNote)
	}
	if !result[0].LineCost.IsZero() {
		t.Fatalf("dropped line cost should be zero, got %s", result[0].LineCost)
	}
	if result[1].SuggestedOrderQty != 30 || result[1].BudgetNote != BudgetNoteKept {
		t.Fatalf("expected product 2 kept in full, got qty=%d note=%q", result[1].SuggestedOrderQty, result[1].BudgetNote)
	}
}

func TestApply_KeepsDroppingUntilExcessCovered(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "A", CostPrice: decimal.NewFromInt(1000)},
		{ID: 2, Name: "B", CostPrice: decimal.NewFromInt(1000)},
		{ID: 3, Name: "C", CostPrice: decimal.NewFromInt(1000)},
	}
	plan := []PlanLine{
		{ProductId: 1, Name: "A", AvgWeeklySales: 1, SuggestedOrderQty: 30},
		{ProductId: 2, Name: "B", AvgWeeklySales: 2, SuggestedOrderQty: 30},
		{ProductId: 3, Name: "C", AvgWeeklySales: 3, SuggestedOrderQty: 30},
	}

	// total 90000, budget 25000: dropping A and B leaves 30000, within
	// feasible reduction semantics (excess 65000 - 30000 - 30000 <= 0)
	result := NewBudgetAllocator(decimal.NewFromInt(25000)).Apply(plan, products)

	dropped := 0
	for _, line := range result {
		if line.BudgetNote == BudgetNoteDropped {
			dropped++
			if line.SuggestedOrderQty != 0 {
				t.Fatalf("dropped line %d still has qty %d", line.ProductId, line.SuggestedOrderQty)
			}
		}
	}
	if dropped != 3 {
		t.Fatalf("expected all 3 lines dropped, got %d", dropped)
	}
}

func TestApply_TiesKeepSnapshotOrder(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "A", CostPrice: decimal.NewFromInt(100)},
		{ID: 2, Name: "B", CostPrice: decimal.NewFromInt(100)},
	}
	plan := []PlanLine{
		{ProductId: 1, Name: "A", AvgWeeklySales: 2, SuggestedOrderQty: 10},
		{ProductId: 2, Name: "B", AvgWeeklySales: 2, SuggestedOrderQty: 10},
	}

	// over budget, equal demand: stable sort keeps product 1 first, so it
	// is dropped first
	result := NewBudgetAllocator(decimal.NewFromInt(1500)).Apply(plan, products)
	if result[0].ProductId != 1 || result[0].BudgetNote != BudgetNoteDropped {
		t.Fatalf("expected product 1 dropped first on tie, got product %d note %q", result[0].ProductId, result[0].BudgetNote)
	}
	if result[1].ProductId != 2 || result[1].BudgetNote != BudgetNoteKept {
		t.Fatalf("expected product 2 kept, got product %d note %q", result[1].ProductId, result[1].BudgetNote)
	}
}

func TestApply_MissingCatalogEntryCostsZero(t *testing.T) {
	plan := []PlanLine{
		{ProductId: 99, Name: "Ghost", AvgWeeklySales: 2, SuggestedOrderQty: 10},
	}

	result := NewBudgetAllocator(decimal.NewFromInt(100)).Apply(plan, nil)
	if !result[0].UnitCost.IsZero() || !result[0].LineCost.IsZero() {
		t.Fatalf("expected zero costs for unknown product, got unit=%s line=%s", result[0].UnitCost, result[0].LineCost)
	}
	if result[0].BudgetNote != BudgetNoteWithinBudget {
		t.Fatalf("expected within budget, got %q", result[0].BudgetNote)
	}
}

func TestApply_ZeroQtyLinesAreLeftAlone(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Slow", CostPrice: decimal.NewFromInt(10)},
		{ID: 2, Name: "Fast", CostPrice: decimal.NewFromInt(1000)},
	}
	plan := []PlanLine{
		{ProductId: 1, Name: "Slow", AvgWeeklySales: 0.5, SuggestedOrderQty: 0},
		{ProductId: 2, Name: "Fast", AvgWeeklySales: 4, SuggestedOrderQty: 30},
	}

	result := NewBudgetAllocator(decimal.NewFromInt(1000)).Apply(plan, products)

	// the zero-qty line is skipped by the drop walk and stamped kept
	if result[0].ProductId != 1 || result[0].BudgetNote != BudgetNoteKept {
		t.Fatalf("expected zero-qty line kept, got product %d note %q", result[0].ProductId, result[0].BudgetNote)
	}
	if result[1].BudgetNote != BudgetNoteDropped {
		t.Fatalf("expected product 2 dropped, got %q", result[1].BudgetNote)
	}
}

func TestApply_ResultNeverExceedsBudgetOrGoesNegative(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "A", CostPrice: decimal.NewFromFloat(12.5)},
		{ID: 2, Name: "B", CostPrice: decimal.NewFromInt(400)},
		{ID: 3, Name: "C", CostPrice: decimal.NewFromInt(7)},
	}
	plan := []PlanLine{
		{ProductId: 1, Name: "A", AvgWeeklySales: 1.5, SuggestedOrderQty: 40},
		{ProductId: 2, Name: "B", AvgWeeklySales: 9, SuggestedOrderQty: 25},
		{ProductId: 3, Name: "C", AvgWeeklySales: 3, SuggestedOrderQty: 12},
	}

	for _, budget := range []int64{0, 100, 500, 10000, 100000} {
		result := NewBudgetAllocator(decimal.NewFromInt(budget)).Apply(clonePlan(plan), products)
		total := decimal.Zero
		for _, line := range result {
			if line.SuggestedOrderQty < 0 {
				t.Fatalf("budget %d: negative qty on product %d", budget, line.ProductId)
			}
			if line.LineCost.IsNegative() {
				t.Fatalf("budget %d: negative line cost on product %d", budget, line.ProductId)
			}
			total = total.Add(line.LineCost)
		}
		if total.GreaterThan(decimal.NewFromInt(budget)) {
			t.Fatalf("budget %d: total cost %s exceeds budget", budget, total)
		}
	}
}

func clonePlan(plan []PlanLine) []PlanLine {
	out := make([]PlanLine, len(plan))
	copy(out, plan)
	return out
}
