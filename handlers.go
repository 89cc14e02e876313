package main

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/nwretail/replenish_backend/config"
	"github.com/nwretail/replenish_backend/models"
	"github.com/nwretail/replenish_backend/planner"
	"github.com/nwretail/replenish_backend/utils"
	"github.com/nwretail/replenish_backend/workflow"
)

// plannerConfigFromEnv builds the pipeline policy once at startup. Env:
// - PLANNER_HORIZON_WEEKS (default 4)
// - PLANNER_SAFETY_FACTOR (default 1.5)
// - PLANNER_WEEKLY_BUDGET (default 25000)
func plannerConfigFromEnv(logger *logrus.Logger) planner.Config {
	cfg := planner.DefaultConfig()
	if v := strings.TrimSpace(os.Getenv("PLANNER_HORIZON_WEEKS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ForecastHorizonWeeks = n
		} else {
			logger.Warn("invalid PLANNER_HORIZON_WEEKS: " + v)
		}
	}
	if v := strings.TrimSpace(os.Getenv("PLANNER_SAFETY_FACTOR")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.SafetyFactor = f
		} else {
			logger.Warn("invalid PLANNER_SAFETY_FACTOR: " + v)
		}
	}
	if v := strings.TrimSpace(os.Getenv("PLANNER_WEEKLY_BUDGET")); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && !d.IsNegative() {
			cfg.WeeklyBudget = d
		} else {
			logger.Warn("invalid PLANNER_WEEKLY_BUDGET: " + v)
		}
	}
	return cfg
}

// ---- Products ---- //

func listProductsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := models.ListActiveProducts(c.Request.Context(), config.GetDB())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func createProductHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewProduct
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product, err := models.CreateProduct(c.Request.Context(), config.GetDB(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		workflow.InvalidatePlanCache(logger)
		c.JSON(http.StatusCreated, product)
	}
}

func updateProductHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var input models.NewProduct
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product, err := models.UpdateProduct(c.Request.Context(), config.GetDB(), id, &input)
		if err != nil {
			if err == utils.ErrorRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		workflow.InvalidatePlanCache(logger)
		c.JSON(http.StatusOK, product)
	}
}

func deactivateProductHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		if err := models.DeactivateProduct(c.Request.Context(), config.GetDB(), id); err != nil {
			if err == utils.ErrorRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		workflow.InvalidatePlanCache(logger)
		c.Status(http.StatusNoContent)
	}
}

// ---- Stock ---- //

func listStockHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := models.CurrentStockRows(c.Request.Context(), config.GetDB())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rows": rows})
	}
}

type updateStockRequest struct {
	Levels []models.NewStockLevel `json:"levels" binding:"required"`
}

func updateStockHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := models.UpsertStockLevels(c.Request.Context(), config.GetDB(), req.Levels); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		workflow.InvalidatePlanCache(logger)
		c.JSON(http.StatusOK, gin.H{"updated": len(req.Levels)})
	}
}

// ---- Sales ---- //

func listSalesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		db := config.GetDB()
		products, err := models.ListActiveProducts(ctx, db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		latest, err := models.LatestWeeklySales(ctx, db, 10)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"products":     products,
			"latest_sales": latest,
			"default_date": utils.WeekStart(time.Now()).Format("2006-01-02"),
		})
	}
}

func createSaleHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewWeeklySale
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sale, err := models.InsertWeeklySale(c.Request.Context(), config.GetDB(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		workflow.InvalidatePlanCache(logger)
		c.JSON(http.StatusCreated, sale)
	}
}

// ---- Planner + Auto Order ---- //

func plannerHandler(logger *logrus.Logger, cfg planner.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, summary, err := workflow.RunPlannerPipelineCached(c.Request.Context(), config.GetDB(), logger, cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"plan": plan, "summary": summary})
	}
}

func plannerExportHandler(logger *logrus.Logger, cfg planner.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, summary, err := workflow.RunPlannerPipelineCached(c.Request.Context(), config.GetDB(), logger, cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		f, err := planner.ExportPlanExcel(plan, summary)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=weekly_plan.xlsx")
		if err := f.Write(c.Writer); err != nil {
			config.LogError(logger, "handlers.go", "plannerExportHandler", "f.Write", nil, err)
		}
	}
}

func autoOrderHandler(logger *logrus.Logger, cfg planner.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		db := config.GetDB()

		// Ordering always runs a fresh pipeline, the cache is for display.
		plan, summary, err := workflow.RunPlannerPipeline(ctx, db, logger, cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		weekStart := utils.WeekStart(time.Now())
		po, err := workflow.CreatePurchaseOrderFromPlan(ctx, db, logger, weekStart, plan)
		if err != nil {
			switch err {
			case workflow.ErrorNothingToOrder:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "plan": plan, "summary": summary})
			case workflow.ErrorOrderInProgress:
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"plan":           plan,
			"summary":        summary,
			"purchase_order": po,
		})
	}
}

func listPurchaseOrdersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := models.ListPurchaseOrders(c.Request.Context(), config.GetDB(), 20)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"purchase_orders": orders})
	}
}
