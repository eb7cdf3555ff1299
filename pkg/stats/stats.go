// Package stats holds the pure calculations behind the harvest, expense and
// dashboard surfaces. No I/O, no failure modes beyond the division-by-zero
// guards.
package stats

import (
	"fmt"
	"time"

	"palmtrack/entities"
)

// TotalValue is the harvest total, always recomputed server-side at write
// time; the submitted value is never trusted.
func TotalValue(quantityKg, pricePerKg float64) float64 {
	return quantityKg * pricePerKg
}

// AveragePricePerKg returns sum(total value) / sum(quantity) over a set of
// harvests, or 0 when total quantity is zero.
func AveragePricePerKg(hs []entities.Harvest) float64 {
	var totalKg, totalValue float64
	for _, h := range hs {
		totalKg += h.QuantityKg
		totalValue += h.TotalValue
	}
	if totalKg == 0 {
		return 0
	}
	return totalValue / totalKg
}

// GoodQualityRatio is the percentage of harvests rated Excellent or Good,
// 0 for an empty set.
func GoodQualityRatio(hs []entities.Harvest) float64 {
	if len(hs) == 0 {
		return 0
	}
	good := 0
	for _, h := range hs {
		if h.Quality == entities.HarvestQualityExcellent || h.Quality == entities.HarvestQualityGood {
			good++
		}
	}
	return float64(good) / float64(len(hs)) * 100
}

// MonthBucket is one calendar-month slot of a monthly aggregate. Months with
// no matching records still appear with Total 0 so chart axes stay continuous.
type MonthBucket struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"` // YYYY-MM
	Total float64    `json:"total"`
}

// MonthlyProduction buckets harvest quantity (kg) per calendar month from
// `from` through `to` inclusive.
func MonthlyProduction(hs []entities.Harvest, from, to time.Time) []MonthBucket {
	return monthlySums(from, to, func(add func(time.Time, float64)) {
		for _, h := range hs {
			add(h.Date, h.QuantityKg)
		}
	})
}

// MonthlyExpenses buckets expense amounts per calendar month from `from`
// through `to` inclusive.
func MonthlyExpenses(es []entities.Expense, from, to time.Time) []MonthBucket {
	return monthlySums(from, to, func(add func(time.Time, float64)) {
		for _, e := range es {
			add(e.Date, e.Amount)
		}
	})
}

func monthlySums(from, to time.Time, each func(add func(time.Time, float64))) []MonthBucket {
	start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return nil
	}

	var buckets []MonthBucket
	index := map[string]int{}
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 1, 0) {
		label := fmt.Sprintf("%04d-%02d", cur.Year(), int(cur.Month()))
		index[label] = len(buckets)
		buckets = append(buckets, MonthBucket{Year: cur.Year(), Month: cur.Month(), Label: label})
	}

	each(func(date time.Time, v float64) {
		label := fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month()))
		if i, ok := index[label]; ok {
			buckets[i].Total += v
		}
	})
	return buckets
}
