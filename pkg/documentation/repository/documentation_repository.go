package repository

import (
	"errors"

	"palmtrack/entities"
)

var ErrNotFound = errors.New("documentation not found")

type DocumentationRepository interface {
	Create(d *entities.Documentation) error
	Update(d *entities.Documentation) error
	Delete(id string) error
	FindByID(id string) (*entities.Documentation, error)
	ListByGarden(gardenID string) ([]entities.Documentation, error)
}
