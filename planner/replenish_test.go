package planner

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nwretail/replenish_backend/models"
)

func boolPtr(b bool) *bool { return &b }

func snapshotWith(products []models.Product, stock map[int]models.StockLevel, sales map[int][]models.WeeklySale) *models.StateSnapshot {
	if stock == nil {
		stock = map[int]models.StockLevel{}
	}
	if sales == nil {
		sales = map[int][]models.WeeklySale{}
	}
	return &models.StateSnapshot{
		Products:       products,
		StockByProduct: stock,
		SalesByProduct: sales,
	}
}

func TestBuildPlan_MinStockFloorNoHistory(t *testing.T) {
	// min_stock=10, no history, no stock: order up to the minimum
	snapshot := snapshotWith(
		[]models.Product{{
			ID: 1, Name: "Rice", MinStock: 10, MaxStock: 100,
			CostPrice: decimal.NewFromInt(5), IsActive: boolPtr(true),
		}},
		nil, nil,
	)

	plan := NewReplenishmentPlanner(1.5).BuildPlan(snapshot, map[int]float64{1: 0.0})
	if len(plan) != 1 {
		t.Fatalf("expected 1 plan line, got %d", len(plan))
	}
	line := plan[0]
	if line.SuggestedOrderQty != 10 {
		t.Fatalf("expected order qty 10, got %d", line.SuggestedOrderQty)
	}
	if line.ForecastNextWeek != 0.0 {
		t.Fatalf("expected forecast 0.0, got %v", line.ForecastNextWeek)
	}
	if !strings.Contains(line.Reason, "target stock ~ 10.00") {
		t.Fatalf("unexpected reason: %q", line.Reason)
	}
}

func TestBuildPlan_SlowMoverOverride(t *testing.T) {
	// forecast < 1 with stock on hand: the override forces qty 0 even though
	// the arithmetic target would suggest ordering
	snapshot := snapshotWith(
		[]models.Product{{ID: 1, Name: "Saffron", MinStock: 10, MaxStock: 100, IsActive: boolPtr(true)}},
		map[int]models.StockLevel{1: {ProductId: 1, QtyInHand: 3}},
		nil,
	)

	plan := NewReplenishmentPlanner(1.5).BuildPlan(snapshot, map[int]float64{1: 0.5})
	line := plan[0]
	if line.SuggestedOrderQty != 0 {
		t.Fatalf("expected slow mover qty 0, got %d", line.SuggestedOrderQty)
	}
	if line.Reason != SlowMoverReason {
		t.Fatalf("expected slow mover reason, got %q", line.Reason)
	}
	if line.CurrentStock != 3 {
		t.Fatalf("expected current stock 3, got %d", line.CurrentStock)
	}
}

func TestBuildPlan_NoSlowMoverAtZeroStock(t *testing.T) {
	// forecast < 1 but nothing on hand: the override does not apply
	snapshot := snapshotWith(
		[]models.Product{{ID: 1, Name: "Saffron", MinStock: 10, MaxStock: 100, IsActive: boolPtr(true)}},
		nil, nil,
	)

	plan := NewReplenishmentPlanner(1.5).BuildPlan(snapshot, map[int]float64{1: 0.5})
	if got := plan[0].SuggestedOrderQty; got != 10 {
		t.Fatalf("expected qty 10 at zero stock, got %d", got)
	}
}

func TestBuildPlan_MaxStockClamp(t *testing.T) {
	// forecast 1000 with safety 1.5 clamps to max_stock=50
	snapshot := snapshotWith(
		[]models.Product{{ID: 1, Name: "Cola", MinStock: 0, MaxStock: 50, IsActive: boolPtr(true)}},
		nil, nil,
	)

	plan := NewReplenishmentPlanner(1.5).BuildPlan(snapshot, map[int]float64{1: 1000.0})
	line := plan[0]
	if line.SuggestedOrderQty != 50 {
		t.Fatalf("expected qty clamped to 50, got %d", line.SuggestedOrderQty)
	}
	if !strings.Contains(line.Reason, "target stock ~ 50.00") {
		t.Fatalf("unexpected reason: %q", line.Reason)
	}
}

func TestBuildPlan_MaxBelowMinClampsToMax(t *testing.T) {
	// malformed policy max<min is tolerated: the clamp wins, the target
	// lands below min_stock
	snapshot := snapshotWith(
		[]models.Product{{ID: 1, Name: "Odd", MinStock: 50, MaxStock: 20, IsActive: boolPtr(true)}},
		nil, nil,
	)

	plan := NewReplenishmentPlanner(1.5).BuildPlan(snapshot, map[int]float64{1: 2.0})
	if got := plan[0].SuggestedOrderQty; got != 20 {
		t.Fatalf("expected qty 20 (clamped to max), got %d", got)
	}
}

func TestBuildPlan_HalfUnitDeficitRoundsUp(t *testing.T) {
	// required 10.5 against empty stock rounds half away from zero
	snapshot := snapshotWith(
		[]models.Product{{ID: 1, Name: "Tea", MinStock: 0, MaxStock: 100, IsActive: boolPtr(true)}},
		nil, nil,
	)

	plan := NewReplenishmentPlanner(1.5).BuildPlan(snapshot, map[int]float64{1: 7.0})
	if got := plan[0].SuggestedOrderQty; got != 11 {
		t.Fatalf("expected qty 11 from target 10.5, got %d", got)
	}
}

func TestBuildPlan_SurplusStockOrdersNothing(t *testing.T) {
	snapshot := snapshotWith(
		[]models.Product{{ID: 1, Name: "Tea", MinStock: 0, MaxStock: 100, IsActive: boolPtr(true)}},
		map[int]models.StockLevel{1: {ProductId: 1, QtyInHand: 80}},
		nil,
	)

	plan := NewReplenishmentPlanner(1.5).BuildPlan(snapshot, map[int]float64{1: 10.0})
	if got := plan[0].SuggestedOrderQty; got != 0 {
		t.Fatalf("expected qty 0 with surplus stock, got %d", got)
	}
}

func TestBuildPlan_OneLinePerProductInSnapshotOrder(t *testing.T) {
	snapshot := snapshotWith(
		[]models.Product{
			{ID: 3, Name: "C", MaxStock: 100, IsActive: boolPtr(true)},
			{ID: 1, Name: "A", MaxStock: 100, IsActive: boolPtr(true)},
			{ID: 2, Name: "B", MaxStock: 100, IsActive: boolPtr(true)},
		},
		nil, nil,
	)

	plan := NewReplenishmentPlanner(1.5).BuildPlan(snapshot, map[int]float64{1: 2, 2: 3, 3: 4})
	if len(plan) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(plan))
	}
	for i, wantId := range []int{3, 1, 2} {
		if plan[i].ProductId != wantId {
			t.Fatalf("line %d: expected product %d, got %d", i, wantId, plan[i].ProductId)
		}
	}
}
