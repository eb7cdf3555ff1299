package service

import "palmtrack/entities"

// HarvestPatch carries partial updates; nil fields are left untouched. After
// any change to quantity or price the total value is recomputed, never taken
// from the caller.
type HarvestPatch struct {
	Date       *string                  `json:"date"` // YYYY-MM-DD
	QuantityKg *float64                 `json:"quantity_kg"`
	PricePerKg *float64                 `json:"price_per_kg"`
	Quality    *entities.HarvestQuality `json:"quality"`
	Note       *string                  `json:"note"`
}

// Stats is the per-garden harvest summary shown on the detail view.
type Stats struct {
	Count          int     `json:"count"`
	TotalKg        float64 `json:"total_kg"`
	TotalValue     float64 `json:"total_value"`
	AvgPricePerKg  float64 `json:"avg_price_per_kg"`
	GoodQualityPct float64 `json:"good_quality_pct"`
}

type HarvestService interface {
	Create(h *entities.Harvest) (*entities.Harvest, error)
	Update(id string, p HarvestPatch) (*entities.Harvest, error)
	Delete(id string) error
	ListByGarden(gardenID string) ([]entities.Harvest, error)
	StatsByGarden(gardenID string) (Stats, error)
}
