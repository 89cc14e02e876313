package planner

import "testing"

func TestSummarize_EmptyPlan(t *testing.T) {
	if got := (PlanSummarizer{}).Summarize(nil); got != SummaryNoProducts {
		t.Fatalf("expected %q, got %q", SummaryNoProducts, got)
	}
}

func TestSummarize_Counts(t *testing.T) {
	plan := []PlanLine{
		{ProductId: 1, AvgWeeklySales: 0.5, CurrentStock: 3, SuggestedOrderQty: 0},  // slow mover
		{ProductId: 2, AvgWeeklySales: 4, CurrentStock: 0, SuggestedOrderQty: 12},   // zero stock
		{ProductId: 3, AvgWeeklySales: 2, CurrentStock: 10, SuggestedOrderQty: 0},   // budget drop or surplus
		{ProductId: 4, AvgWeeklySales: 0.25, CurrentStock: 0, SuggestedOrderQty: 1}, // low demand but empty shelf
	}

	want := "Analyzed 4 products for this week's replenishment. " +
		"Total quantity suggested to order: 13 units. " +
		"1 items are slow-moving and are skipped for ordering. " +
		"2 items currently have zero stock and are prioritized where needed. " +
		"For 2 items, no purchase is needed this week."
	if got := (PlanSummarizer{}).Summarize(plan); got != want {
		t.Fatalf("summary mismatch:\n got: %q\nwant: %q", got, want)
	}
}
