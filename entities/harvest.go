package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HarvestQuality string

const (
	HarvestQualityExcellent HarvestQuality = "Excellent"
	HarvestQualityGood      HarvestQuality = "Good"
	HarvestQualityFair      HarvestQuality = "Fair"
	HarvestQualityPoor      HarvestQuality = "Poor"
)

type Harvest struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	GardenID   string         `gorm:"index" json:"garden_id"`
	Date       time.Time      `gorm:"index" json:"date"`
	QuantityKg float64        `json:"quantity_kg"`
	PricePerKg float64        `json:"price_per_kg"`
	TotalValue float64        `json:"total_value"` // always quantity_kg * price_per_kg, recomputed on write
	Quality    HarvestQuality `json:"quality"`
	Note       string         `json:"note"`

	CreatedAt time.Time `json:"created_at"`
}

func (h *Harvest) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
