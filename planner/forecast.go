package planner

import (
	"github.com/nwretail/replenish_backend/models"
)

const DefaultForecastHorizonWeeks = 4

// ForecastEngine predicts next week's demand per product as the unweighted
// mean of the most recent HorizonWeeks of sales. No recency decay, no
// seasonality; a product without history forecasts 0 and never errors.
type ForecastEngine struct {
	HorizonWeeks int
}

func NewForecastEngine(horizonWeeks int) *ForecastEngine {
	if horizonWeeks <= 0 {
		horizonWeeks = DefaultForecastHorizonWeeks
	}
	return &ForecastEngine{HorizonWeeks: horizonWeeks}
}

// Forecast returns the average weekly demand keyed by product id, one entry
// per active product in the snapshot.
func (e *ForecastEngine) Forecast(snapshot *models.StateSnapshot) map[int]float64 {
	forecasts := make(map[int]float64, len(snapshot.Products))
	for _, product := range snapshot.Products {
		forecasts[product.ID] = e.avgSales(snapshot.SalesByProduct[product.ID])
	}
	return forecasts
}

// avgSales expects rows ordered most recent week first (the snapshot
// contract) and averages up to HorizonWeeks of them.
func (e *ForecastEngine) avgSales(rows []models.WeeklySale) float64 {
	if len(rows) == 0 {
		return 0.0
	}
	considered := rows
	if len(considered) > e.HorizonWeeks {
		considered = considered[:e.HorizonWeeks]
	}
	sum := 0
	for _, row := range considered {
		sum += row.QtySold
	}
	return float64(sum) / float64(len(considered))
}
