package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palmtrack/entities"
)

func harvest(date string, kg, price float64, q entities.HarvestQuality) entities.Harvest {
	d, _ := time.Parse("2006-01-02", date)
	return entities.Harvest{Date: d, QuantityKg: kg, PricePerKg: price, TotalValue: kg * price, Quality: q}
}

func TestTotalValue(t *testing.T) {
	assert.Equal(t, 3750000.0, TotalValue(1500, 2500))
	assert.Equal(t, 0.0, TotalValue(0, 2500))
}

func TestAveragePricePerKg(t *testing.T) {
	hs := []entities.Harvest{
		harvest("2024-01-10", 1000, 2000, entities.HarvestQualityGood),
		harvest("2024-02-10", 3000, 2400, entities.HarvestQualityFair),
	}
	// (2,000,000 + 7,200,000) / 4,000
	assert.InDelta(t, 2300, AveragePricePerKg(hs), 1e-9)
}

func TestAveragePricePerKgEmpty(t *testing.T) {
	assert.Equal(t, 0.0, AveragePricePerKg(nil))
	assert.Equal(t, 0.0, AveragePricePerKg([]entities.Harvest{}))
}

func TestGoodQualityRatio(t *testing.T) {
	hs := []entities.Harvest{
		harvest("2024-01-01", 1, 1, entities.HarvestQualityExcellent),
		harvest("2024-01-02", 1, 1, entities.HarvestQualityGood),
		harvest("2024-01-03", 1, 1, entities.HarvestQualityFair),
		harvest("2024-01-04", 1, 1, entities.HarvestQualityPoor),
	}
	assert.InDelta(t, 50, GoodQualityRatio(hs), 1e-9)
	assert.Equal(t, 0.0, GoodQualityRatio(nil))
}

func TestMonthlyProductionZeroFillsEmptyMonths(t *testing.T) {
	hs := []entities.Harvest{
		harvest("2024-01-15", 1200, 2500, entities.HarvestQualityGood),
		harvest("2024-03-02", 800, 2500, entities.HarvestQualityGood),
		harvest("2024-03-20", 700, 2500, entities.HarvestQualityGood),
	}
	from, _ := time.Parse("2006-01-02", "2024-01-01")
	to, _ := time.Parse("2006-01-02", "2024-04-30")

	got := MonthlyProduction(hs, from, to)
	require.Len(t, got, 4)
	assert.Equal(t, "2024-01", got[0].Label)
	assert.Equal(t, 1200.0, got[0].Total)
	assert.Equal(t, "2024-02", got[1].Label)
	assert.Equal(t, 0.0, got[1].Total) // empty month still emitted
	assert.Equal(t, 1500.0, got[2].Total)
	assert.Equal(t, "2024-04", got[3].Label)
	assert.Equal(t, 0.0, got[3].Total)
}

func TestMonthlyExpenses(t *testing.T) {
	d := func(s string) time.Time { v, _ := time.Parse("2006-01-02", s); return v }
	es := []entities.Expense{
		{Date: d("2024-02-01"), Amount: 150000},
		{Date: d("2024-02-28"), Amount: 50000},
		{Date: d("2023-12-31"), Amount: 99999}, // outside range, ignored
	}
	got := MonthlyExpenses(es, d("2024-01-01"), d("2024-02-29"))
	require.Len(t, got, 2)
	assert.Equal(t, 0.0, got[0].Total)
	assert.Equal(t, 200000.0, got[1].Total)
}

func TestMonthlySumsInvertedRange(t *testing.T) {
	d := func(s string) time.Time { v, _ := time.Parse("2006-01-02", s); return v }
	assert.Nil(t, MonthlyProduction(nil, d("2024-05-01"), d("2024-01-01")))
}
