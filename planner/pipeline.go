package planner

import (
	"github.com/shopspring/decimal"

	"github.com/nwretail/replenish_backend/models"
)

// Config is the fixed policy of one pipeline instance. Multiple pipelines
// with different policies can coexist; nothing in the pipeline is shared
// mutable state.
type Config struct {
	ForecastHorizonWeeks int             `json:"forecast_horizon_weeks"`
	SafetyFactor         float64         `json:"safety_factor"`
	WeeklyBudget         decimal.Decimal `json:"weekly_budget"`
}

func DefaultConfig() Config {
	return Config{
		ForecastHorizonWeeks: DefaultForecastHorizonWeeks,
		SafetyFactor:         DefaultSafetyFactor,
		WeeklyBudget:         DefaultWeeklyBudget,
	}
}

// Pipeline runs the stages in fixed order over one immutable snapshot:
// forecast, replenishment plan, budget allocation, summary. Each stage
// returns a new value; no stage mutates upstream state, so re-running with
// the same snapshot reproduces the same plan byte for byte.
type Pipeline struct {
	forecast   *ForecastEngine
	replenish  *ReplenishmentPlanner
	budget     *BudgetAllocator
	summarizer PlanSummarizer
}

func NewPipeline(cfg Config) *Pipeline {
	budget := cfg.WeeklyBudget
	if budget.IsZero() && cfg.ForecastHorizonWeeks == 0 && cfg.SafetyFactor == 0 {
		// zero-value Config means "use defaults", an explicit zero budget
		// inside an otherwise configured Config is honored as-is
		budget = DefaultWeeklyBudget
	}
	return &Pipeline{
		forecast:   NewForecastEngine(cfg.ForecastHorizonWeeks),
		replenish:  NewReplenishmentPlanner(cfg.SafetyFactor),
		budget:     NewBudgetAllocator(budget),
		summarizer: PlanSummarizer{},
	}
}

// Run validates the snapshot contract, then produces the budget-feasible
// plan and its summary text.
func (p *Pipeline) Run(snapshot *models.StateSnapshot) ([]PlanLine, string, error) {
	if err := ValidateSnapshot(snapshot); err != nil {
		return nil, "", err
	}
	forecasts := p.forecast.Forecast(snapshot)
	rawPlan := p.replenish.BuildPlan(snapshot, forecasts)
	finalPlan := p.budget.Apply(rawPlan, snapshot.Products)
	summary := p.summarizer.Summarize(finalPlan)
	return finalPlan, summary, nil
}
