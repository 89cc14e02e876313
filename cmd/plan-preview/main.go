// plan-preview runs the weekly replenishment pipeline against the live
// database and prints the resulting plan without creating a purchase order.
// Useful for checking what /auto_order would commit.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/plan-preview
//
// Optional: PLANNER_HORIZON_WEEKS, PLANNER_SAFETY_FACTOR, PLANNER_WEEKLY_BUDGET.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nwretail/replenish_backend/config"
	"github.com/nwretail/replenish_backend/planner"
	"github.com/nwretail/replenish_backend/workflow"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	cfg := planner.DefaultConfig()
	if v := strings.TrimSpace(os.Getenv("PLANNER_HORIZON_WEEKS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ForecastHorizonWeeks = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("PLANNER_SAFETY_FACTOR")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.SafetyFactor = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("PLANNER_WEEKLY_BUDGET")); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && !d.IsNegative() {
			cfg.WeeklyBudget = d
		}
	}

	plan, summary, err := workflow.RunPlannerPipeline(ctx, db, config.GetLogger(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipeline failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-6s %-24s %8s %8s %8s %10s %12s  %s\n",
		"ID", "NAME", "AVG/WK", "STOCK", "ORDER", "UNIT", "LINE COST", "BUDGET NOTE")
	for _, line := range plan {
		fmt.Printf("%-6d %-24s %8.2f %8d %8d %10s %12s  %s\n",
			line.ProductId, line.Name, line.AvgWeeklySales, line.CurrentStock,
			line.SuggestedOrderQty, line.UnitCost.String(), line.LineCost.String(), line.BudgetNote)
	}
	fmt.Println()
	fmt.Println(summary)
}
