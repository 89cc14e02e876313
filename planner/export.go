package planner

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportPlanExcel renders the final plan as a spreadsheet, one row per line
// plus the summary beneath the table. Costs are exported as strings to keep
// the decimal representation exact.
func ExportPlanExcel(plan []PlanLine, summary string) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}

	headers := []string{
		"ProductId", "Name", "AvgWeeklySales", "CurrentStock", "ForecastNextWeek",
		"UnitCost", "LineCost", "SuggestedOrderQty", "Reason", "BudgetNote",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, line := range plan {
		row := rowIdx + 2
		f.SetCellValue(sheet, "A"+fmt.Sprint(row), line.ProductId)
		f.SetCellValue(sheet, "B"+fmt.Sprint(row), line.Name)
		f.SetCellValue(sheet, "C"+fmt.Sprint(row), line.AvgWeeklySales)
		f.SetCellValue(sheet, "D"+fmt.Sprint(row), line.CurrentStock)
		f.SetCellValue(sheet, "E"+fmt.Sprint(row), line.ForecastNextWeek)
		f.SetCellValue(sheet, "F"+fmt.Sprint(row), line.UnitCost.String())
		f.SetCellValue(sheet, "G"+fmt.Sprint(row), line.LineCost.String())
		f.SetCellValue(sheet, "H"+fmt.Sprint(row), line.SuggestedOrderQty)
		f.SetCellValue(sheet, "I"+fmt.Sprint(row), line.Reason)
		f.SetCellValue(sheet, "J"+fmt.Sprint(row), line.BudgetNote)
	}

	f.SetCellValue(sheet, "A"+fmt.Sprint(len(plan)+3), summary)
	return f, nil
}
