package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GardenStatus string

const (
	GardenStatusGood           GardenStatus = "Good"
	GardenStatusNeedsAttention GardenStatus = "Needs Attention"
	GardenStatusProblematic    GardenStatus = "Problematic"
)

type Garden struct {
	ID             string       `gorm:"primaryKey" json:"id"`
	Slug           string       `gorm:"uniqueIndex" json:"slug"`
	Name           string       `json:"name"`
	Location       string       `json:"location"`
	LocationDetail string       `json:"location_detail"`
	AreaHa         float64      `json:"area_ha"`
	TreeCount      int          `json:"tree_count"`
	PlantingYear   int          `json:"planting_year"`
	Variety        string       `json:"variety"`
	Status         GardenStatus `gorm:"index" json:"status"` // Good|Needs Attention|Problematic
	CreatedBy      string       `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Garden) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
