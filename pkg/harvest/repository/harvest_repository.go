package repository

import (
	"errors"

	"palmtrack/entities"
)

var ErrNotFound = errors.New("harvest not found")

type HarvestRepository interface {
	Create(h *entities.Harvest) error
	Update(h *entities.Harvest) error
	Delete(id string) error
	FindByID(id string) (*entities.Harvest, error)
	ListByGarden(gardenID string) ([]entities.Harvest, error)
	ListAll() ([]entities.Harvest, error)
}
