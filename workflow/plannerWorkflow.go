package workflow

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nwretail/replenish_backend/config"
	"github.com/nwretail/replenish_backend/models"
	"github.com/nwretail/replenish_backend/planner"
	"github.com/nwretail/replenish_backend/utils"
)

// planCacheTTL bounds staleness of the cached weekly plan. Mutations to
// catalog, stock or sales invalidate the key eagerly; the TTL is the
// fallback when Redis outlives a missed invalidation.
const planCacheTTL = 10 * time.Minute

type cachedPlan struct {
	Plan    []planner.PlanLine `json:"plan"`
	Summary string             `json:"summary"`
}

// RunPlannerPipeline materializes one snapshot and runs the decision
// pipeline over it: forecast, replenishment plan, budget allocation,
// summary.
func RunPlannerPipeline(ctx context.Context, db *gorm.DB, logger *logrus.Logger, cfg planner.Config) ([]planner.PlanLine, string, error) {
	snapshot, err := models.CollectStateSnapshot(ctx, db)
	if err != nil {
		config.LogError(logger, "plannerWorkflow.go", "RunPlannerPipeline", "CollectStateSnapshot", nil, err)
		return nil, "", err
	}

	plan, summary, err := planner.NewPipeline(cfg).Run(snapshot)
	if err != nil {
		config.LogError(logger, "plannerWorkflow.go", "RunPlannerPipeline", "pipeline.Run", nil, err)
		return nil, "", err
	}
	return plan, summary, nil
}

// RunPlannerPipelineCached serves the current week's plan from Redis when
// available. The cache is best-effort: any Redis failure falls through to a
// fresh pipeline run.
func RunPlannerPipelineCached(ctx context.Context, db *gorm.DB, logger *logrus.Logger, cfg planner.Config) ([]planner.PlanLine, string, error) {
	key := PlanCacheKey(time.Now())

	var cached cachedPlan
	if found, err := config.GetRedisObject(key, &cached); err == nil && found {
		return cached.Plan, cached.Summary, nil
	} else if err != nil {
		logger.WithFields(logrus.Fields{"key": key}).Warn("plan cache read failed: " + err.Error())
	}

	plan, summary, err := RunPlannerPipeline(ctx, db, logger, cfg)
	if err != nil {
		return nil, "", err
	}

	if err := config.SetRedisObject(key, cachedPlan{Plan: plan, Summary: summary}, planCacheTTL); err != nil {
		logger.WithFields(logrus.Fields{"key": key}).Warn("plan cache write failed: " + err.Error())
	}
	return plan, summary, nil
}

func PlanCacheKey(now time.Time) string {
	return "planner:" + utils.WeekStart(now).Format("2006-01-02")
}

// InvalidatePlanCache drops the current week's cached plan. Called after
// every product / stock / sales mutation.
func InvalidatePlanCache(logger *logrus.Logger) {
	key := PlanCacheKey(time.Now())
	if err := config.RemoveRedisKey(key); err != nil {
		logger.WithFields(logrus.Fields{"key": key}).Warn("plan cache invalidation failed: " + err.Error())
	}
}
