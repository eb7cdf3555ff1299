package controllerImp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	expenseRepo "palmtrack/pkg/expense/repository"
	gardenRepo "palmtrack/pkg/garden/repository"
	gardenSvc "palmtrack/pkg/garden/service"
	harvestRepo "palmtrack/pkg/harvest/repository"
	"palmtrack/pkg/stats"
)

const dateLayout = "2006-01-02"

// ReportCtrl exports a per-garden workbook with one sheet of harvests and
// one of expenses, plus summary rows.
type ReportCtrl struct {
	gardens  gardenSvc.GardenService
	harvests harvestRepo.HarvestRepository
	expenses expenseRepo.ExpenseRepository
}

func New(g gardenSvc.GardenService, h harvestRepo.HarvestRepository, e expenseRepo.ExpenseRepository) *ReportCtrl {
	return &ReportCtrl{gardens: g, harvests: h, expenses: e}
}

func (r *ReportCtrl) Export(c echo.Context) error {
	garden, err := r.gardens.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gardenRepo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	hs, err := r.harvests.ListByGarden(garden.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	es, err := r.expenses.ListByGarden(garden.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Harvests"); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f.SetSheetRow("Harvests", "A1", &[]any{"Date", "Quantity (kg)", "Price/kg", "Total Value", "Quality", "Note"})
	for i, h := range hs {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow("Harvests", cell, &[]any{
			h.Date.Format(dateLayout), h.QuantityKg, h.PricePerKg, h.TotalValue, string(h.Quality), h.Note,
		})
	}
	var totalKg, totalValue float64
	for _, h := range hs {
		totalKg += h.QuantityKg
		totalValue += stats.TotalValue(h.QuantityKg, h.PricePerKg)
	}
	sum := fmt.Sprintf("A%d", len(hs)+3)
	f.SetSheetRow("Harvests", sum, &[]any{"Total", totalKg, "", totalValue})

	if _, err := f.NewSheet("Expenses"); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f.SetSheetRow("Expenses", "A1", &[]any{"Date", "Category", "Description", "Amount", "Note"})
	var spent float64
	for i, e := range es {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow("Expenses", cell, &[]any{e.Date.Format(dateLayout), e.Category, e.Description, e.Amount, e.Note})
		spent += e.Amount
	}
	f.SetSheetRow("Expenses", fmt.Sprintf("A%d", len(es)+3), &[]any{"Total", "", "", spent})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s-report.xlsx"`, garden.Slug))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
