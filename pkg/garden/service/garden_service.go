package service

import "palmtrack/entities"

// Resolver maps a caller-supplied garden reference (canonical id or slug) to
// the canonical id. Child-entity surfaces depend on this and nothing else of
// the garden service.
type Resolver interface {
	Resolve(ref string) (string, error)
}

type GardenInput struct {
	Name           string                `json:"name"`
	Location       string                `json:"location"`
	LocationDetail string                `json:"location_detail"`
	AreaHa         float64               `json:"area_ha"`
	TreeCount      int                   `json:"tree_count"`
	PlantingYear   int                   `json:"planting_year"`
	Variety        string                `json:"variety"`
	Status         entities.GardenStatus `json:"status"`
}

type GardenService interface {
	Resolver
	Create(in GardenInput, createdBy string) (*entities.Garden, error)
	Get(ref string) (*entities.Garden, error)
	Update(ref string, in GardenInput) (*entities.Garden, error)
	Delete(ref string) error
	List(status, query string) ([]entities.Garden, error)
}
